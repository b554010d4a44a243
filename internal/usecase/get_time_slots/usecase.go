package get_time_slots

import (
	"context"
	"fmt"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// UseCase use case для получения слотов консультаций на дату.
// Вызывается при каждой смене даты в форме: набор пересчитывается, а выбранное время
// сбрасывается, если его нет в новом наборе
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimeSlots: date=%s, selected=%s", req.Date.Format(domain.DateFormat), req.SelectedTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTimeSlots: validation failed: %v", err)
		return nil, err
	}

	if domain.IsDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetTimeSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date.Format(domain.DateFormat))
	}

	slots, kept := domain.ReconcileTime(req.Date, req.SelectedTime)

	return &Response{
		Date:         req.Date,
		Weekend:      domain.IsWeekend(req.Date),
		Slots:        slots,
		SelectedTime: kept,
		Cleared:      !req.SelectedTime.IsZero() && kept.IsZero(),
	}, nil
}
