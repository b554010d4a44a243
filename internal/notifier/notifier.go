package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

const tracerName = "github.com/mahadtoukaleh/CodeClarity/internal/notifier"

// Notifier рендерит и отправляет уведомления.
// Каждый вызов Send независим, повторных попыток нет
type Notifier struct {
	transport Transport
	renderer  *Renderer
	recorder  DeliveryRecorder
	metrics   Metrics
	tracer    trace.Tracer
	logger    Logger
	now       func() time.Time
}

// Option настройка Notifier
type Option func(*Notifier)

// WithRecorder включает журнал доставки
func WithRecorder(recorder DeliveryRecorder) Option {
	return func(n *Notifier) {
		n.recorder = recorder
	}
}

// WithMetrics включает учет отправок в метриках
func WithMetrics(metrics Metrics) Option {
	return func(n *Notifier) {
		n.metrics = metrics
	}
}

// NewNotifier создает новый экземпляр Notifier
func NewNotifier(transport Transport, logger Logger, opts ...Option) *Notifier {
	n := &Notifier{
		transport: transport,
		renderer:  NewRenderer(),
		tracer:    otel.Tracer(tracerName),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send рендерит шаблон kind для payload и отправляет получателю.
// Все ошибки оборачивают domain.ErrNotification
func (n *Notifier) Send(ctx context.Context, recipient domain.Recipient, kind domain.TemplateKind, payload any) error {
	ctx, span := n.tracer.Start(ctx, "notifier.Send", trace.WithAttributes(
		attribute.String("notification.kind", string(kind)),
		attribute.String("notification.transport", n.transport.Name()),
	))
	defer span.End()

	started := n.now()

	msg, err := n.renderer.Render(recipient, kind, payload)
	if err == nil {
		if deliverErr := n.transport.Deliver(ctx, msg); deliverErr != nil {
			err = fmt.Errorf("%w: %s via %s: %v", ErrDelivery, kind, n.transport.Name(), deliverErr)
		}
	}

	n.observe(ctx, kind, recipient, started, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "notification failed")
		return err
	}

	n.logger.Info("Notifier: %s sent via %s", kind, n.transport.Name())
	n.logger.Debug("Notifier: %s recipient=%s", kind, recipient.Email)
	return nil
}

// observe пишет метрики и журнал доставки. Ошибка журнала не влияет на результат отправки
func (n *Notifier) observe(ctx context.Context, kind domain.TemplateKind, recipient domain.Recipient, started time.Time, sendErr error) {
	status := domain.DeliverySent
	var errMsg *string
	if sendErr != nil {
		status = domain.DeliveryFailed
		msg := sendErr.Error()
		errMsg = &msg
	}

	if n.metrics != nil {
		n.metrics.ObserveNotification(string(kind), n.transport.Name(), string(status), n.now().Sub(started).Seconds())
	}

	if n.recorder == nil {
		return
	}

	record := &domain.DeliveryRecord{
		ID:           uuid.New(),
		SubmissionID: domain.SubmissionIDFromContext(ctx),
		Kind:         kind,
		Recipient:    recipient.Email,
		Transport:    n.transport.Name(),
		Status:       status,
		ErrorMessage: errMsg,
		CreatedAt:    n.now().UTC(),
	}
	if err := n.recorder.Record(ctx, record); err != nil {
		n.logger.Warn("Notifier: failed to record delivery of %s: %v", kind, err)
	}
}
