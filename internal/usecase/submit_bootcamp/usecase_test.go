package submit_bootcamp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

type fakeNotifier struct {
	calls   []domain.TemplateKind
	to      []domain.Recipient
	payload []any
	err     error
}

func (n *fakeNotifier) Send(_ context.Context, recipient domain.Recipient, kind domain.TemplateKind, payload any) error {
	n.calls = append(n.calls, kind)
	n.to = append(n.to, recipient)
	n.payload = append(n.payload, payload)
	return n.err
}

type fakeMetrics struct {
	statuses []string
}

func (m *fakeMetrics) ObserveSubmission(flow, status string) {
	m.statuses = append(m.statuses, flow+":"+status)
}

type recordingLogger struct {
	debugs []string
	infos  []string
	errors []string
}

func (l *recordingLogger) Debug(format string, v ...interface{}) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}
func (l *recordingLogger) Warn(string, ...interface{}) {}
func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

var operator = domain.Recipient{Name: "CodeClarity", Email: "codeclarityteam@gmail.com"}

func validRequest() *Request {
	return &Request{
		FirstName:   "Sam",
		LastName:    "Lee",
		Email:       "sam@example.com",
		AgeGroup:    "kids",
		ParentName:  "Alex Lee",
		ParentEmail: "alex@example.com",
		ParentPhone: "555-123-4567",
	}
}

func TestExecute_Success(t *testing.T) {
	n := &fakeNotifier{}
	m := &fakeMetrics{}
	uc := NewUseCase(n, operator, m, &recordingLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, resp.Status)
	assert.NotEqual(t, uuid.Nil, resp.SubmissionID)
	assert.Equal(t, domain.AgeGroupKids, resp.Enrollment.AgeGroup)

	require.Equal(t, []domain.TemplateKind{domain.TemplateOperatorBootcampAlert}, n.calls)
	assert.Equal(t, operator, n.to[0])
	assert.IsType(t, &domain.BootcampRequest{}, n.payload[0])
	assert.Equal(t, []string{"bootcamp:completed"}, m.statuses)
}

func TestExecute_ShortPhoneNeverNotifies(t *testing.T) {
	n := &fakeNotifier{}
	m := &fakeMetrics{}
	uc := NewUseCase(n, operator, m, &recordingLogger{})

	req := validRequest()
	req.ParentPhone = "555-1234"

	resp, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, resp)
	assert.Empty(t, n.calls)
	assert.Equal(t, []string{"bootcamp:failed"}, m.statuses)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "parentPhone", verr.Violations[0].Field)
	assert.Equal(t, "Please enter a valid phone number", verr.Violations[0].Message)
}

func TestExecute_OperatorFailure(t *testing.T) {
	n := &fakeNotifier{err: errors.New("resend: 503")}
	log := &recordingLogger{}
	uc := NewUseCase(n, operator, nil, log)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrOperatorNotification)
	assert.Nil(t, resp)
	assert.Len(t, n.calls, 1)
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "resend: 503")
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(r *Request)
		wantField string
		wantMsg   string
	}{
		{
			name:      "unknown age group",
			modify:    func(r *Request) { r.AgeGroup = "adults" },
			wantField: "ageGroup",
			wantMsg:   "Please select an age group",
		},
		{
			name:      "short parent name",
			modify:    func(r *Request) { r.ParentName = "A" },
			wantField: "parentName",
			wantMsg:   "Parent/Guardian name must be at least 2 characters",
		},
		{
			name:      "bad parent email",
			modify:    func(r *Request) { r.ParentEmail = "alex@" },
			wantField: "parentEmail",
			wantMsg:   "Please enter a valid parent email address",
		},
		{
			name:      "phone of spaces",
			modify:    func(r *Request) { r.ParentPhone = "           " },
			wantField: "parentPhone",
			wantMsg:   "Please enter a valid phone number",
		},
		{
			name:      "phone too long",
			modify:    func(r *Request) { r.ParentPhone = strings.Repeat("5", 33) },
			wantField: "parentPhone",
			wantMsg:   "Please enter a valid phone number",
		},
		{
			name:      "parent name too long",
			modify:    func(r *Request) { r.ParentName = strings.Repeat("a", 201) },
			wantField: "parentName",
			wantMsg:   "Parent/Guardian name is too long",
		},
		{
			name:      "missing first name",
			modify:    func(r *Request) { r.FirstName = "" },
			wantField: "firstName",
			wantMsg:   "First name must be at least 2 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.modify(req)

			_, err := validateRequest(req)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.wantField, verr.Violations[0].Field)
			assert.Equal(t, tt.wantMsg, verr.Violations[0].Message)
		})
	}
}

func TestValidateRequest_TeensNormalized(t *testing.T) {
	req := validRequest()
	req.AgeGroup = " teens "
	req.Email = " sam@example.com "

	got, err := validateRequest(req)
	require.NoError(t, err)
	assert.Equal(t, domain.AgeGroupTeens, got.AgeGroup)
	assert.Equal(t, "sam@example.com", got.Email)
	assert.Equal(t, "Saturdays at 3PM", got.AgeGroup.SessionTime())
}

func TestExecute_ContactDataLoggedAtDebugOnly(t *testing.T) {
	log := &recordingLogger{}
	uc := NewUseCase(&fakeNotifier{}, operator, nil, log)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotEmpty(t, log.infos)
	for _, line := range log.infos {
		assert.NotContains(t, line, "sam@example.com")
	}
	require.Len(t, log.debugs, 1)
	assert.Contains(t, log.debugs[0], "email=sam@example.com")
}
