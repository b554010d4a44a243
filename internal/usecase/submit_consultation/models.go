package submit_consultation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// Request сырые данные формы записи на консультацию
type Request struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=200"`
	LastName  string `json:"lastName" validate:"required,min=2,max=200"`
	Email     string `json:"email" validate:"required,email,max=200"`
	Subject   string `json:"subject" validate:"required,oneof=python java web math"`
	Plan      string `json:"plan" validate:"required,oneof=starter focused quarterly not-sure"`
	Message   string `json:"message" validate:"required,min=10,max=5000"`
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	Time      string `json:"time" validate:"required"` // HH:MM
}

func (r *Request) normalized() *Request {
	return &Request{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Email:     strings.TrimSpace(r.Email),
		Subject:   strings.TrimSpace(r.Subject),
		Plan:      strings.TrimSpace(r.Plan),
		Message:   strings.TrimSpace(r.Message),
		Date:      strings.TrimSpace(r.Date),
		Time:      strings.TrimSpace(r.Time),
	}
}

// Response результат обработки принятой заявки
type Response struct {
	SubmissionID uuid.UUID
	Status       domain.SubmissionStatus // completed или completed_with_warning
	Consultation *domain.ConsultationRequest
	Outcomes     []domain.NotificationOutcome
	Warnings     []string
}
