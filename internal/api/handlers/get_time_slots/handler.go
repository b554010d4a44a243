package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/mahadtoukaleh/CodeClarity/internal/api/handlers"
	getTimeSlots "github.com/mahadtoukaleh/CodeClarity/internal/usecase/get_time_slots"
)

const (
	msgMissingDate   = "date is required"
	msgInvalidFormat = "invalid date or time format, expected date=YYYY-MM-DD and time=HH:MM"
	msgDateInPast    = "Date cannot be in the past"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-slots
// Query params: date (required, YYYY-MM-DD), time (optional, HH:MM - текущий выбор)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /time-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidDate):
			h.logger.Warn("GET /time-slots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /time-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFormat)

		default:
			h.logger.Error("GET /time-slots - Failed to get time slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-slots - Slots retrieved: date=%s, slots_count=%d, cleared=%t",
		dateStr, len(result.Slots), result.Cleared)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
