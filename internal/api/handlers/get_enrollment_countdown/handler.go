package get_enrollment_countdown

import (
	"net/http"

	"github.com/mahadtoukaleh/CodeClarity/internal/api/handlers"
)

type Handler struct {
	useCase GetEnrollmentCountdownUseCase
	logger  Logger
}

func NewHandler(useCase GetEnrollmentCountdownUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bootcamp/countdown
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /bootcamp/countdown - Failed to get countdown: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
