package submit_bootcamp

import (
	"errors"
	"net/http"

	"github.com/mahadtoukaleh/CodeClarity/internal/api/handlers"
	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	submitBootcamp "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_bootcamp"
)

const (
	msgSuccess            = "Registration submitted successfully"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFormData    = "Invalid form data"
	msgSendFailed         = "Failed to submit registration. Please try again later."
)

type Handler struct {
	useCase SubmitBootcampUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBootcampUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bootcamp/enrollments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EnrollmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bootcamp/enrollments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /bootcamp/enrollments - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidFormData, handlers.FieldErrorsFrom(err))

		case errors.Is(err, submitBootcamp.ErrOperatorNotification):
			h.logger.Error("POST /bootcamp/enrollments - Operator notification failed: %v", err)
			handlers.RespondInternalErrorMessage(w, msgSendFailed)

		default:
			h.logger.Error("POST /bootcamp/enrollments - Failed to submit enrollment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bootcamp/enrollments - Enrollment accepted: submission_id=%s, age_group=%s",
		result.SubmissionID, result.Enrollment.AgeGroup)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
