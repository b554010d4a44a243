package submit_bootcamp

import (
	"context"

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

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
