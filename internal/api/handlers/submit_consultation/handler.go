package submit_consultation

import (
	"errors"
	"net/http"

	"github.com/mahadtoukaleh/CodeClarity/internal/api/handlers"
	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	submitConsultation "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_consultation"
)

const (
	msgSuccess            = "Booking request sent successfully"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFormData    = "Invalid form data"
	msgSendFailed         = "Failed to send booking request. Please try again later."
)

type Handler struct {
	useCase SubmitConsultationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitConsultationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /consultations - Validation failed: %v", err)
			handlers.RespondValidationError(w, msgInvalidFormData, handlers.FieldErrorsFrom(err))

		case errors.Is(err, submitConsultation.ErrOperatorNotification):
			h.logger.Error("POST /consultations - Operator notification failed: %v", err)
			handlers.RespondInternalErrorMessage(w, msgSendFailed)

		default:
			h.logger.Error("POST /consultations - Failed to submit consultation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /consultations - Consultation accepted: submission_id=%s, status=%s",
		result.SubmissionID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
