package notifier

import (
	"context"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// Transport доставляет готовое письмо одному получателю
type Transport interface {
	Deliver(ctx context.Context, msg *Message) error
	// Name идентификатор транспорта для метрик и журнала доставки
	Name() string
}

// DeliveryRecorder журнал доставки уведомлений
type DeliveryRecorder interface {
	Record(ctx context.Context, record *domain.DeliveryRecord) error
}

// Metrics интерфейс для учета отправок
type Metrics interface {
	ObserveNotification(kind, transport, outcome string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
