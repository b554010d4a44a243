package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	"github.com/mahadtoukaleh/CodeClarity/pkg/types"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) add(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Debug(format string, v ...interface{}) { l.add("DEBUG", format, v...) }
func (l *recordingLogger) Info(format string, v ...interface{})  { l.add("INFO", format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.add("WARN", format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.add("ERROR", format, v...) }

type fakeTransport struct {
	err      error
	messages []*Message
}

func (t *fakeTransport) Name() string { return "fake" }

func (t *fakeTransport) Deliver(_ context.Context, msg *Message) error {
	t.messages = append(t.messages, msg)
	return t.err
}

type fakeRecorder struct {
	err     error
	records []*domain.DeliveryRecord
}

func (r *fakeRecorder) Record(_ context.Context, record *domain.DeliveryRecord) error {
	r.records = append(r.records, record)
	return r.err
}

var errTransportDown = errors.New("connection refused")

func sampleConsultation() *domain.ConsultationRequest {
	return &domain.ConsultationRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   domain.SubjectPython,
		Plan:      domain.PlanFocused,
		Message:   "I need help with <recursion> & loops",
		Date:      time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		Time:      types.TimeString("09:00"),
	}
}

func sampleBootcamp() *domain.BootcampRequest {
	return &domain.BootcampRequest{
		FirstName:   "Tim",
		LastName:    "Berners",
		Email:       "tim@example.com",
		AgeGroup:    domain.AgeGroupKids,
		ParentName:  "Mary Berners",
		ParentEmail: "mary@example.com",
		ParentPhone: "555-123-4567",
	}
}
