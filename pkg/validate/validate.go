package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError нарушение правила из struct-тега validate
type FieldError struct {
	Field string // имя поля из json-тега
	Tag   string // сработавшее правило (required, min, email, oneof...)
	Param string // параметр правила, например "2" для min=2
}

// Validator обертка над go-playground/validator, возвращающая имена полей как в JSON
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор. Экземпляр потокобезопасен и кэширует разбор тегов
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct проверяет структуру и возвращает все нарушения.
// На каждое поле приходится не больше одного нарушения - первое сработавшее правило
func (v *Validator) Struct(s any) ([]FieldError, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError: передан не struct
		return nil, err
	}

	result := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return result, nil
}
