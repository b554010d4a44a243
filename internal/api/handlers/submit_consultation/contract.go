package submit_consultation

import (
	"context"

	submitConsultation "github.com/mahadtoukaleh/CodeClarity/internal/usecase/submit_consultation"
)

type SubmitConsultationUseCase interface {
	Execute(ctx context.Context, req *submitConsultation.Request) (*submitConsultation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
