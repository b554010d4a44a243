package submit_consultation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// UseCase use case для приема заявки на консультацию.
// Уведомление оператору обязательно, подтверждение заявителю - best-effort
type UseCase struct {
	notifier     Notifier
	operator     domain.Recipient
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(notifier Notifier, operator domain.Recipient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		notifier:     notifier,
		operator:     operator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case приема заявки на консультацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	submissionID := uuid.New()
	uc.logger.Info("SubmitConsultation: submission=%s state=%s date=%s time=%s",
		submissionID, domain.StateReceived, req.Date, req.Time)
	uc.logger.Debug("SubmitConsultation: submission=%s email=%s", submissionID, req.Email)

	// 1. Валидация, до нее Notifier не вызывается
	consultation, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.observe(domain.StatusFailed)
		if errors.Is(err, domain.ErrValidation) {
			uc.logger.Warn("SubmitConsultation: submission=%s state=%s: %v", submissionID, domain.StateFailed, err)
			return nil, err
		}
		uc.logger.Error("SubmitConsultation: submission=%s state=%s: %v", submissionID, domain.StateFailed, err)
		return nil, err
	}
	uc.logger.Info("SubmitConsultation: submission=%s state=%s", submissionID, domain.StateValidated)

	// 2. Начатая отправка доводится до конца, даже если клиент отключился
	notifyCtx := domain.ContextWithSubmissionID(context.WithoutCancel(ctx), submissionID)
	uc.logger.Info("SubmitConsultation: submission=%s state=%s", submissionID, domain.StateNotifying)

	resp := &Response{
		SubmissionID: submissionID,
		Status:       domain.StatusCompleted,
		Consultation: consultation,
	}

	// 3. Уведомление оператору. Без него заявка не принимается
	operatorOutcome := uc.send(notifyCtx, uc.operator, domain.TemplateOperatorConsultationAlert, consultation)
	resp.Outcomes = append(resp.Outcomes, operatorOutcome)
	if !operatorOutcome.Succeeded() {
		uc.logger.Error("SubmitConsultation: submission=%s state=%s: operator alert to %s failed: %v",
			submissionID, domain.StateFailed, uc.operator.Email, operatorOutcome.Err)
		uc.observe(domain.StatusFailed)
		return nil, fmt.Errorf("%w: %v", ErrOperatorNotification, operatorOutcome.Err)
	}

	// 4. Подтверждение заявителю, только после успешного уведомления оператора
	requesterOutcome := uc.send(notifyCtx, consultation.Recipient(), domain.TemplateRequesterConsultationConfirmation, consultation)
	resp.Outcomes = append(resp.Outcomes, requesterOutcome)
	if !requesterOutcome.Succeeded() {
		uc.logger.Error("SubmitConsultation: submission=%s: requester confirmation failed, submission accepted: %v",
			submissionID, requesterOutcome.Err)
		resp.Status = domain.StatusCompletedWithWarning
		resp.Warnings = append(resp.Warnings, "confirmation email could not be sent")
	}

	uc.logger.Info("SubmitConsultation: submission=%s state=%s status=%s",
		submissionID, domain.StateCompleted, resp.Status)
	uc.observe(resp.Status)

	return resp, nil
}

func (uc *UseCase) send(ctx context.Context, recipient domain.Recipient, kind domain.TemplateKind, payload any) domain.NotificationOutcome {
	outcome := domain.NotificationOutcome{Kind: kind, Recipient: recipient, Status: domain.DeliverySent}
	if err := uc.notifier.Send(ctx, recipient, kind, payload); err != nil {
		outcome.Status = domain.DeliveryFailed
		outcome.Err = err
	}
	return outcome
}

func (uc *UseCase) observe(status domain.SubmissionStatus) {
	if uc.metrics != nil {
		uc.metrics.ObserveSubmission(string(domain.FlowConsultation), string(status))
	}
}
