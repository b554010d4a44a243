package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

const operatorConsultationHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Booking Request</h2>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.FullName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Plan:</strong> {{.Plan}}</p>
    <p><strong>Preferred Date:</strong> {{.Date}}</p>
    <p><strong>Preferred Time:</strong> {{.Time}}</p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <h3 style="color: #0369a1;">Next Steps</h3>
  <ol>
    <li>Review the booking request details above</li>
    <li>Confirm availability for the requested date and time</li>
    <li>Send a confirmation email to the student</li>
    <li>Add the session to your calendar</li>
  </ol>
</div>`

const requesterConfirmationHTML = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Thank You for Your Interest!</h2>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p>Hi {{.FirstName}},</p>
    <p>Thank you for requesting a consultation with CodeClarity. We've received your booking request for:</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p>We'll review your request and get back to you within 24 hours to confirm your session.</p>
    <p>If you have any questions in the meantime, feel free to reply to this email.</p>
  </div>
  <h3 style="color: #0369a1;">What to Expect</h3>
  <ul>
    <li>Confirmation of your session time</li>
    <li>Meeting link (for online sessions)</li>
    <li>Brief questionnaire to help us prepare</li>
  </ul>
</div>`

const operatorBootcampHTML = `<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Bootcamp Registration</h2>
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #1e40af; margin-top: 0;">Student Information:</h3>
    <p><strong>Name:</strong> {{.FullName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Age Group:</strong> {{.AgeGroup}}</p>
    <p><strong>Session Time:</strong> {{.SessionTime}}</p>
  </div>
  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #1e40af; margin-top: 0;">Parent/Guardian Information:</h3>
    <p><strong>Name:</strong> {{.ParentName}}</p>
    <p><strong>Email:</strong> {{.ParentEmail}}</p>
    <p><strong>Phone:</strong> {{.ParentPhone}}</p>
  </div>
  <h3 style="color: #1e40af;">Next Steps:</h3>
  <ol>
    <li>Add student to the appropriate class roster</li>
    <li>Send welcome package</li>
    <li>Schedule initial assessment call</li>
  </ol>
</div>`

type consultationView struct {
	FullName  string
	FirstName string
	Email     string
	Subject   string
	Plan      string
	Date      string
	Time      string
	Message   string
}

type bootcampView struct {
	FullName    string
	Email       string
	AgeGroup    string
	SessionTime string
	ParentName  string
	ParentEmail string
	ParentPhone string
}

type templateSpec struct {
	subject string
	tmpl    *template.Template
}

// Renderer превращает данные заявки в письмо заданного типа.
// Результат детерминирован: одинаковые данные дают одинаковое письмо
type Renderer struct {
	templates map[domain.TemplateKind]templateSpec
}

// NewRenderer разбирает все шаблоны. Ошибка разбора - ошибка программиста, поэтому Must
func NewRenderer() *Renderer {
	return &Renderer{
		templates: map[domain.TemplateKind]templateSpec{
			domain.TemplateOperatorConsultationAlert: {
				subject: "New Booking Request",
				tmpl:    template.Must(template.New("operator-consultation").Parse(operatorConsultationHTML)),
			},
			domain.TemplateRequesterConsultationConfirmation: {
				subject: "Your CodeClarity Consultation Request",
				tmpl:    template.Must(template.New("requester-confirmation").Parse(requesterConfirmationHTML)),
			},
			domain.TemplateOperatorBootcampAlert: {
				subject: "New Bootcamp Registration",
				tmpl:    template.Must(template.New("operator-bootcamp").Parse(operatorBootcampHTML)),
			},
		},
	}
}

// Render собирает письмо для получателя
func (r *Renderer) Render(recipient domain.Recipient, kind domain.TemplateKind, payload any) (*Message, error) {
	spec, ok := r.templates[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
	}

	view, err := viewFor(kind, payload)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := spec.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, kind, err)
	}

	return &Message{
		Kind:    kind,
		To:      recipient,
		Subject: spec.subject,
		HTML:    buf.String(),
	}, nil
}

func viewFor(kind domain.TemplateKind, payload any) (any, error) {
	switch kind {
	case domain.TemplateOperatorConsultationAlert, domain.TemplateRequesterConsultationConfirmation:
		req, ok := payload.(*domain.ConsultationRequest)
		if !ok || req == nil {
			return nil, fmt.Errorf("%w: %s expects *domain.ConsultationRequest, got %T", ErrPayloadMismatch, kind, payload)
		}
		return consultationView{
			FullName:  req.FullName(),
			FirstName: req.FirstName,
			Email:     req.Email,
			Subject:   req.Subject.Label(),
			Plan:      req.Plan.Label(),
			Date:      req.DisplayDate(),
			Time:      req.Time.String(),
			Message:   req.Message,
		}, nil

	case domain.TemplateOperatorBootcampAlert:
		req, ok := payload.(*domain.BootcampRequest)
		if !ok || req == nil {
			return nil, fmt.Errorf("%w: %s expects *domain.BootcampRequest, got %T", ErrPayloadMismatch, kind, payload)
		}
		return bootcampView{
			FullName:    req.FullName(),
			Email:       req.Email,
			AgeGroup:    req.AgeGroup.Label(),
			SessionTime: req.AgeGroup.SessionTime(),
			ParentName:  req.ParentName,
			ParentEmail: req.ParentEmail,
			ParentPhone: req.ParentPhone,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, kind)
}
