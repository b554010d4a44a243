package resend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сеть)
	ErrInternal = errors.New("resend client: internal error")

	// ErrRejected возвращается, когда Resend отклонил письмо (4xx)
	ErrRejected = errors.New("resend client: email rejected")

	// ErrUnavailable возвращается при 5xx и 429 от Resend
	ErrUnavailable = errors.New("resend client: provider unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("resend client: invalid response")
)
