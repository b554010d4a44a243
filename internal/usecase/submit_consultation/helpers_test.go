package submit_consultation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

var errSMTPDown = errors.New("smtp: connection refused")

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

// среда, 14 октября 2026
var testNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

type sentCall struct {
	recipient domain.Recipient
	kind      domain.TemplateKind
	hasID     bool
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []sentCall
	fail  map[domain.TemplateKind]error
}

func (n *fakeNotifier) Send(ctx context.Context, recipient domain.Recipient, kind domain.TemplateKind, _ any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, sentCall{
		recipient: recipient,
		kind:      kind,
		hasID:     domain.SubmissionIDFromContext(ctx) != uuid.Nil,
	})
	return n.fail[kind]
}

func (n *fakeNotifier) count(kind domain.TemplateKind) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, call := range n.calls {
		if call.kind == kind {
			c++
		}
	}
	return c
}

type fakeMetrics struct {
	statuses []string
}

func (m *fakeMetrics) ObserveSubmission(flow, status string) {
	m.statuses = append(m.statuses, flow+":"+status)
}

type recordingLogger struct {
	mu     sync.Mutex
	debugs []string
	infos  []string
	errors []string
	warns  []string
}

func (l *recordingLogger) Debug(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

var operator = domain.Recipient{Name: "CodeClarity", Email: "codeclarityteam@gmail.com"}

func validRequest() *Request {
	return &Request{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "python",
		Plan:      "focused",
		Message:   "I need help with recursion and data structures.",
		Date:      "2026-10-17", // суббота
		Time:      "09:00",
	}
}

func newTestUseCase(n *fakeNotifier, m Metrics, log *recordingLogger) *UseCase {
	uc := NewUseCase(n, operator, m, log)
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}
