package submit_consultation

import (
	"context"
	"time"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	Send(ctx context.Context, recipient domain.Recipient, kind domain.TemplateKind, payload any) error
}

// Metrics интерфейс учета заявок
type Metrics interface {
	ObserveSubmission(flow, status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
