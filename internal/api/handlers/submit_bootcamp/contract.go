package submit_bootcamp

import (
	"context"

	submitBootcamp "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_bootcamp"
)

type SubmitBootcampUseCase interface {
	Execute(ctx context.Context, req *submitBootcamp.Request) (*submitBootcamp.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
