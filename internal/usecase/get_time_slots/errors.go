package get_time_slots

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не задана или уже прошла
	ErrInvalidDate = errors.New("get_time_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")
)
