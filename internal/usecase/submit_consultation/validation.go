package submit_consultation

import (
	"fmt"
	"time"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	"github.com/mahadtoukaleh/CodeClarity/pkg/types"
	"github.com/mahadtoukaleh/CodeClarity/pkg/validate"
)

var fieldValidator = validate.New()

// fieldMessages тексты нарушений по полю и правилу; "" - текст по умолчанию для поля
var fieldMessages = map[string]map[string]string{
	"firstName": {
		"":    "First name must be at least 2 characters",
		"max": "First name is too long",
	},
	"lastName": {
		"":    "Last name must be at least 2 characters",
		"max": "Last name is too long",
	},
	"email": {
		"": "Please enter a valid email address",
	},
	"subject": {
		"": "Please select a subject",
	},
	"plan": {
		"": "Please select a plan",
	},
	"message": {
		"":    "Please provide more details about your situation",
		"max": "Message is too long",
	},
	"date": {
		"": "Please select a date",
	},
	"time": {
		"": "Please select a time slot",
	},
}

func messageFor(fe validate.FieldError) string {
	byTag, ok := fieldMessages[fe.Field]
	if !ok {
		return fmt.Sprintf("%s is invalid", fe.Field)
	}
	if msg, ok := byTag[fe.Tag]; ok {
		return msg
	}
	return byTag[""]
}

// validateRequest проверяет заявку целиком и собирает все нарушения.
// Функция чистая: результат зависит только от req и now
func validateRequest(req *Request, now time.Time) (*domain.ConsultationRequest, error) {
	req = req.normalized()

	fieldErrs, err := fieldValidator.Struct(req)
	if err != nil {
		return nil, fmt.Errorf("%w: validator: %v", ErrInternal, err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field, messageFor(fe))
	}

	var (
		date   time.Time
		dateOK bool
	)
	if !verr.HasField("date") {
		parsed, err := domain.ParseDate(req.Date, now.Location())
		switch {
		case err != nil:
			verr.Add("date", "Please select a valid date")
		case domain.IsDateInPast(parsed, now):
			verr.Add("date", "Date cannot be in the past")
		default:
			date, dateOK = parsed, true
		}
	}

	var (
		slot   types.TimeString
		timeOK bool
	)
	if !verr.HasField("time") {
		parsed, err := types.NewTimeStringFromString(req.Time)
		if err != nil {
			verr.Add("time", "Please select a time slot in HH:MM format")
		} else {
			slot, timeOK = parsed, true
		}
	}

	// Перекрестная проверка: время должно входить в набор слотов выбранной даты
	if dateOK && timeOK && !domain.SlotsFor(date).Contains(slot) {
		kind := "weekday"
		if domain.IsWeekend(date) {
			kind = "weekend"
		}
		verr.AddCause("time",
			fmt.Sprintf("%s is not available on %s (%s slots: %s)",
				slot, date.Format(domain.DateFormat), kind, slotRange(date)),
			domain.ErrSlotMismatch)
	}

	if !verr.Empty() {
		return nil, verr
	}

	return &domain.ConsultationRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   domain.Subject(req.Subject),
		Plan:      domain.Plan(req.Plan),
		Message:   req.Message,
		Date:      date,
		Time:      slot,
	}, nil
}

func slotRange(date time.Time) string {
	slots := domain.SlotsFor(date)
	return fmt.Sprintf("%s-%s", slots[0], slots[len(slots)-1])
}
