package submit_bootcamp

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// UseCase use case для регистрации на буткемп.
// Уведомляется только оператор, подтверждения заявителю в этом сценарии нет
type UseCase struct {
	notifier Notifier
	operator domain.Recipient
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(notifier Notifier, operator domain.Recipient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		notifier: notifier,
		operator: operator,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case регистрации на буткемп
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	submissionID := uuid.New()
	uc.logger.Info("SubmitBootcamp: submission=%s state=%s ageGroup=%s",
		submissionID, domain.StateReceived, req.AgeGroup)
	uc.logger.Debug("SubmitBootcamp: submission=%s email=%s", submissionID, req.Email)

	// 1. Валидация
	enrollment, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SubmitBootcamp: submission=%s state=%s: %v", submissionID, domain.StateFailed, err)
		uc.observe(domain.StatusFailed)
		return nil, err
	}
	uc.logger.Info("SubmitBootcamp: submission=%s state=%s", submissionID, domain.StateValidated)

	// 2. Единственное уведомление - оператору
	notifyCtx := domain.ContextWithSubmissionID(context.WithoutCancel(ctx), submissionID)
	uc.logger.Info("SubmitBootcamp: submission=%s state=%s", submissionID, domain.StateNotifying)

	outcome := domain.NotificationOutcome{
		Kind:      domain.TemplateOperatorBootcampAlert,
		Recipient: uc.operator,
		Status:    domain.DeliverySent,
	}
	if err := uc.notifier.Send(notifyCtx, uc.operator, domain.TemplateOperatorBootcampAlert, enrollment); err != nil {
		uc.logger.Error("SubmitBootcamp: submission=%s state=%s: operator alert to %s failed: %v",
			submissionID, domain.StateFailed, uc.operator.Email, err)
		uc.observe(domain.StatusFailed)
		return nil, fmt.Errorf("%w: %v", ErrOperatorNotification, err)
	}

	uc.logger.Info("SubmitBootcamp: submission=%s state=%s", submissionID, domain.StateCompleted)
	uc.observe(domain.StatusCompleted)

	return &Response{
		SubmissionID: submissionID,
		Status:       domain.StatusCompleted,
		Enrollment:   enrollment,
		Outcome:      outcome,
	}, nil
}

func (uc *UseCase) observe(status domain.SubmissionStatus) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmission(string(domain.FlowBootcamp), string(status))
	}
}
