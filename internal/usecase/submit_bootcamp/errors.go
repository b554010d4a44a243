package submit_bootcamp

import "errors"

var (
	// ErrOperatorNotification возвращается, когда оператор не получил уведомление о регистрации
	ErrOperatorNotification = errors.New("submit_bootcamp: operator notification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_bootcamp: internal error")
)
