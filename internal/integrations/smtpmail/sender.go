package smtpmail

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// SendFunc сигнатура net/smtp.SendMail, подменяется в тестах
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender отправляет HTML-письма через SMTP-релей
type Sender struct {
	addr     string
	host     string
	from     string
	auth     smtp.Auth
	sendMail SendFunc
	now      func() time.Time
}

// NewSender создает отправителя. Без username авторизация не используется (Mailpit, локальный релей)
func NewSender(host string, port int, username, password, from string) *Sender {
	host = strings.TrimSpace(host)

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &Sender{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		host:     host,
		from:     strings.TrimSpace(from),
		auth:     auth,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

// WithSendFunc подменяет функцию отправки
func (s *Sender) WithSendFunc(fn SendFunc) *Sender {
	s.sendMail = fn
	return s
}

// Send отправляет письмо одному получателю.
// net/smtp не принимает context, поэтому отмена проверяется только до начала отправки
func (s *Sender) Send(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fromAddr, err := mail.ParseAddress(s.from)
	if err != nil {
		return fmt.Errorf("smtp: invalid from address %q: %w", s.from, err)
	}
	toAddr, err := mail.ParseAddress(to)
	if err != nil {
		return fmt.Errorf("smtp: invalid recipient %q: %w", to, err)
	}

	msg := buildMessage(fromAddr, toAddr, subject, html, s.now())
	if err := s.sendMail(s.addr, s.auth, fromAddr.Address, []string{toAddr.Address}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp: send to %s via %s: %w", toAddr.Address, s.addr, err)
	}
	return nil
}

func buildMessage(from, to *mail.Address, subject, html string, now time.Time) string {
	headers := []string{
		"From: " + from.String(),
		"To: " + to.String(),
		"Subject: " + mime.QEncoding.Encode("utf-8", subject),
		"Date: " + now.Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=utf-8",
	}
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + html + "\r\n"
}
