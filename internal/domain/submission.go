package domain

import (
	"context"

	"github.com/google/uuid"
)

// Flow тип заявки
type Flow string

const (
	FlowConsultation Flow = "consultation"
	FlowBootcamp     Flow = "bootcamp"
)

// SubmissionState состояние обработки заявки:
// received -> validated -> notifying -> completed | failed
type SubmissionState string

const (
	StateReceived  SubmissionState = "received"
	StateValidated SubmissionState = "validated"
	StateNotifying SubmissionState = "notifying"
	StateCompleted SubmissionState = "completed"
	StateFailed    SubmissionState = "failed"
)

// SubmissionStatus итог обработки заявки, который видит вызывающий код
type SubmissionStatus string

const (
	// StatusCompleted все уведомления отправлены
	StatusCompleted SubmissionStatus = "completed"
	// StatusCompletedWithWarning оператор уведомлен, best-effort уведомление не ушло
	StatusCompletedWithWarning SubmissionStatus = "completed_with_warning"
	// StatusFailed ошибка валидации или обязательного уведомления
	StatusFailed SubmissionStatus = "failed"
)

type ctxKey int

const submissionIDKey ctxKey = iota

// ContextWithSubmissionID кладет ID заявки в контекст, чтобы связать с ней записи журнала доставки
func ContextWithSubmissionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, submissionIDKey, id)
}

// SubmissionIDFromContext возвращает ID заявки или uuid.Nil
func SubmissionIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(submissionIDKey).(uuid.UUID)
	return id
}
