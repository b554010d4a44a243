package notifier

import (
	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

// Message отрендеренное письмо
type Message struct {
	Kind    domain.TemplateKind
	To      domain.Recipient
	Subject string
	HTML    string
}
