package domain

import (
	"errors"
	"strings"
)

var (
	// ErrValidation базовая ошибка валидации заявки
	ErrValidation = errors.New("validation failed")

	// ErrSlotMismatch время не входит в набор слотов выбранной даты
	ErrSlotMismatch = errors.New("time is not offered on the selected date")

	// ErrNotification ошибка отправки уведомления (транспорт, провайдер, шаблон)
	ErrNotification = errors.New("notification failed")
)

// Violation нарушение правила для конкретного поля
type Violation struct {
	Field   string
	Message string
	Err     error // уточняющая причина, например ErrSlotMismatch
}

// ValidationError все нарушения, найденные при проверке заявки
type ValidationError struct {
	Violations []Violation
}

// Add добавляет нарушение
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// AddCause добавляет нарушение с причиной
func (e *ValidationError) AddCause(field, message string, cause error) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message, Err: cause})
}

// HasField true, если по полю уже есть нарушение
func (e *ValidationError) HasField(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Empty true, если нарушений нет
func (e *ValidationError) Empty() bool {
	return len(e.Violations) == 0
}

// OrNil возвращает nil, если нарушений нет
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is позволяет проверять errors.Is(err, ErrValidation) и errors.Is(err, ErrSlotMismatch)
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	for _, v := range e.Violations {
		if v.Err != nil && errors.Is(v.Err, target) {
			return true
		}
	}
	return false
}
