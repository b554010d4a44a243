package get_enrollment_countdown

import (
	"context"

	getCountdown "github.com/mahadtoukaleh/CodeClarity/internal/usecase/get_enrollment_countdown"
)

type GetEnrollmentCountdownUseCase interface {
	Execute(ctx context.Context) (*getCountdown.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
