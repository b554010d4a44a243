package get_enrollment_countdown

import (
	"context"
	"time"
)

// UseCase счетчик до окончания набора на буткемп.
// Значение производное и на прием заявок не влияет
type UseCase struct {
	deadline     time.Time
	timeProvider TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deadline time.Time) *UseCase {
	return &UseCase{
		deadline:     deadline,
		timeProvider: &RealTimeProvider{},
	}
}

// Execute возвращает остаток времени; после дедлайна все поля нулевые и Expired = true
func (uc *UseCase) Execute(_ context.Context) (*Response, error) {
	resp := &Response{Deadline: uc.deadline}

	remaining := uc.deadline.Sub(uc.timeProvider.Now())
	if remaining <= 0 {
		resp.Expired = true
		return resp, nil
	}

	total := int64(remaining / time.Second)
	resp.Days = int(total / 86400)
	resp.Hours = int(total % 86400 / 3600)
	resp.Minutes = int(total % 3600 / 60)
	resp.Seconds = int(total % 60)

	return resp, nil
}
