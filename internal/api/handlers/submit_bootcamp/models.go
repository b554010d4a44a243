package submit_bootcamp

import (
	submitBootcamp "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_bootcamp"
)

// EnrollmentRequest HTTP request model
type EnrollmentRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	AgeGroup    string `json:"ageGroup"` // "kids" | "teens"
	ParentName  string `json:"parentName"`
	ParentEmail string `json:"parentEmail"`
	ParentPhone string `json:"parentPhone"`
}

// EnrollmentResponse HTTP response model
type EnrollmentResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
	SessionTime  string `json:"sessionTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EnrollmentRequest) ToUseCaseRequest() *submitBootcamp.Request {
	return &submitBootcamp.Request{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		AgeGroup:    r.AgeGroup,
		ParentName:  r.ParentName,
		ParentEmail: r.ParentEmail,
		ParentPhone: r.ParentPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBootcamp.Response) *EnrollmentResponse {
	return &EnrollmentResponse{
		Success:      true,
		Message:      msgSuccess,
		SubmissionID: resp.SubmissionID.String(),
		SessionTime:  resp.Enrollment.AgeGroup.SessionTime(),
	}
}
