package submit_consultation

import "errors"

var (
	// ErrOperatorNotification возвращается, когда оператор не получил уведомление о заявке.
	// Подтверждение заявителю в этом случае не отправляется
	ErrOperatorNotification = errors.New("submit_consultation: operator notification failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_consultation: internal error")
)
