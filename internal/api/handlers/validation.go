package handlers

import (
	"errors"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// FieldErrorsFrom извлекает нарушения из ошибки валидации.
// Для ошибок другого типа возвращает nil
func FieldErrorsFrom(err error) []FieldError {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	result := make([]FieldError, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		result = append(result, FieldError{Field: v.Field, Message: v.Message})
	}
	return result
}
