package domain

import (
	"time"

	"github.com/google/uuid"
)

// TemplateKind тип шаблона уведомления
type TemplateKind string

const (
	TemplateOperatorConsultationAlert         TemplateKind = "operator-consultation-alert"
	TemplateRequesterConsultationConfirmation TemplateKind = "requester-consultation-confirmation"
	TemplateOperatorBootcampAlert             TemplateKind = "operator-bootcamp-alert"
)

// Recipient получатель уведомления
type Recipient struct {
	Name  string
	Email string
}

// DeliveryStatus результат отправки одному получателю
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// NotificationOutcome результат одного вызова Notifier
type NotificationOutcome struct {
	Kind      TemplateKind
	Recipient Recipient
	Status    DeliveryStatus
	Err       error // nil при Status == DeliverySent
}

// Succeeded true при успешной отправке
func (o NotificationOutcome) Succeeded() bool {
	return o.Status == DeliverySent
}

// DeliveryRecord запись журнала доставки уведомлений
type DeliveryRecord struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	Kind         TemplateKind
	Recipient    string
	Transport    string
	Status       DeliveryStatus
	ErrorMessage *string
	CreatedAt    time.Time
}
