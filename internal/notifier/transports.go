package notifier

import (
	"context"
	"net/mail"

	"github.com/mahadtoukaleh/CodeClarity/internal/integrations/resend"
)

// ResendClient интерфейс клиента Resend
type ResendClient interface {
	SendEmail(ctx context.Context, email *resend.SendEmailRequest) (string, error)
}

// ResendTransport доставка через Resend API
type ResendTransport struct {
	client ResendClient
	from   string
}

// NewResendTransport создает транспорт Resend
func NewResendTransport(client ResendClient, from string) *ResendTransport {
	return &ResendTransport{client: client, from: from}
}

func (t *ResendTransport) Name() string {
	return "resend"
}

func (t *ResendTransport) Deliver(ctx context.Context, msg *Message) error {
	_, err := t.client.SendEmail(ctx, &resend.SendEmailRequest{
		From:    t.from,
		To:      []string{msg.To.Email},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	return err
}

// SMTPSender интерфейс SMTP-отправителя
type SMTPSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// SMTPTransport доставка через SMTP-релей
type SMTPTransport struct {
	sender SMTPSender
}

// NewSMTPTransport создает SMTP-транспорт
func NewSMTPTransport(sender SMTPSender) *SMTPTransport {
	return &SMTPTransport{sender: sender}
}

func (t *SMTPTransport) Name() string {
	return "smtp"
}

func (t *SMTPTransport) Deliver(ctx context.Context, msg *Message) error {
	to := (&mail.Address{Name: msg.To.Name, Address: msg.To.Email}).String()
	return t.sender.Send(ctx, to, msg.Subject, msg.HTML)
}

// LogTransport пишет письмо в лог вместо отправки. Для локального запуска
type LogTransport struct {
	logger Logger
}

// NewLogTransport создает лог-транспорт
func NewLogTransport(logger Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Name() string {
	return "log"
}

func (t *LogTransport) Deliver(_ context.Context, msg *Message) error {
	t.logger.Info("LogTransport: to=%s subject=%q kind=%s body_bytes=%d", msg.To.Email, msg.Subject, msg.Kind, len(msg.HTML))
	return nil
}
