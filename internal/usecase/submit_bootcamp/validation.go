package submit_bootcamp

import (
	"fmt"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	"github.com/mahadtoukaleh/CodeClarity/pkg/validate"
)

var fieldValidator = validate.New()

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
	"ageGroup": {
		"": "Please select an age group",
	},
	"parentName": {
		"":    "Parent/Guardian name must be at least 2 characters",
		"max": "Parent/Guardian name is too long",
	},
	"parentEmail": {
		"": "Please enter a valid parent email address",
	},
	"parentPhone": {
		"": "Please enter a valid phone number",
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

// validateRequest проверяет регистрацию и собирает все нарушения
func validateRequest(req *Request) (*domain.BootcampRequest, error) {
	req = req.normalized()

	fieldErrs, err := fieldValidator.Struct(req)
	if err != nil {
		return nil, fmt.Errorf("%w: validator: %v", ErrInternal, err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field, messageFor(fe))
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &domain.BootcampRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		AgeGroup:    domain.AgeGroup(req.AgeGroup),
		ParentName:  req.ParentName,
		ParentEmail: req.ParentEmail,
		ParentPhone: req.ParentPhone,
	}, nil
}
