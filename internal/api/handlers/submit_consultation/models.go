package submit_consultation

import (
	submitConsultation "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_consultation"
)

// ConsultationRequest HTTP request model
type ConsultationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Plan      string `json:"plan"`
	Message   string `json:"message"`
	Date      string `json:"date"` // "2026-10-17"
	Time      string `json:"time"` // "09:00"
}

// SubmissionResponse HTTP response model
type SubmissionResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	SubmissionID string   `json:"submissionId"`
	Status       string   `json:"status"`
	Warnings     []string `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Разбор даты и времени выполняет use case, чтобы собрать все нарушения сразу
func (r *ConsultationRequest) ToUseCaseRequest() *submitConsultation.Request {
	return &submitConsultation.Request{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Subject:   r.Subject,
		Plan:      r.Plan,
		Message:   r.Message,
		Date:      r.Date,
		Time:      r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitConsultation.Response) *SubmissionResponse {
	return &SubmissionResponse{
		Success:      true,
		Message:      msgSuccess,
		SubmissionID: resp.SubmissionID.String(),
		Status:       string(resp.Status),
		Warnings:     resp.Warnings,
	}
}
