package submit_bootcamp

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// Request сырые данные формы регистрации на буткемп
type Request struct {
	FirstName   string `json:"firstName" validate:"required,min=2,max=200"`
	LastName    string `json:"lastName" validate:"required,min=2,max=200"`
	Email       string `json:"email" validate:"required,email,max=200"`
	AgeGroup    string `json:"ageGroup" validate:"required,oneof=kids teens"`
	ParentName  string `json:"parentName" validate:"required,min=2,max=200"`
	ParentEmail string `json:"parentEmail" validate:"required,email,max=200"`
	ParentPhone string `json:"parentPhone" validate:"required,min=10,max=32"` // формат не проверяется, только длина
}

func (r *Request) normalized() *Request {
	return &Request{
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Email:       strings.TrimSpace(r.Email),
		AgeGroup:    strings.TrimSpace(r.AgeGroup),
		ParentName:  strings.TrimSpace(r.ParentName),
		ParentEmail: strings.TrimSpace(r.ParentEmail),
		ParentPhone: strings.TrimSpace(r.ParentPhone),
	}
}

// Response результат обработки принятой регистрации
type Response struct {
	SubmissionID uuid.UUID
	Status       domain.SubmissionStatus
	Enrollment   *domain.BootcampRequest
	Outcome      domain.NotificationOutcome
}
