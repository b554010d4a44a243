package submit_consultation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

func TestExecute_BothNotificationsSucceed(t *testing.T) {
	n := &fakeNotifier{}
	m := &fakeMetrics{}
	uc := newTestUseCase(n, m, &recordingLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, resp.Status)
	assert.NotEqual(t, uuid.Nil, resp.SubmissionID)
	assert.Empty(t, resp.Warnings)
	require.Len(t, resp.Outcomes, 2)
	assert.True(t, resp.Outcomes[0].Succeeded())
	assert.True(t, resp.Outcomes[1].Succeeded())

	require.Len(t, n.calls, 2)
	assert.Equal(t, domain.TemplateOperatorConsultationAlert, n.calls[0].kind)
	assert.Equal(t, operator, n.calls[0].recipient)
	assert.Equal(t, domain.TemplateRequesterConsultationConfirmation, n.calls[1].kind)
	assert.Equal(t, "jane@example.com", n.calls[1].recipient.Email)
	assert.Equal(t, "Jane Doe", n.calls[1].recipient.Name)
	assert.True(t, n.calls[0].hasID)

	assert.Equal(t, []string{"consultation:completed"}, m.statuses)
}

func TestExecute_OperatorFailureSkipsConfirmation(t *testing.T) {
	n := &fakeNotifier{fail: map[domain.TemplateKind]error{
		domain.TemplateOperatorConsultationAlert: errSMTPDown,
	}}
	m := &fakeMetrics{}
	log := &recordingLogger{}
	uc := newTestUseCase(n, m, log)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrOperatorNotification)
	assert.Nil(t, resp)

	assert.Equal(t, 1, n.count(domain.TemplateOperatorConsultationAlert))
	assert.Equal(t, 0, n.count(domain.TemplateRequesterConsultationConfirmation))
	assert.Equal(t, []string{"consultation:failed"}, m.statuses)
	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "operator alert")
}

func TestExecute_ConfirmationFailureStillAccepted(t *testing.T) {
	n := &fakeNotifier{fail: map[domain.TemplateKind]error{
		domain.TemplateRequesterConsultationConfirmation: errSMTPDown,
	}}
	m := &fakeMetrics{}
	log := &recordingLogger{}
	uc := newTestUseCase(n, m, log)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompletedWithWarning, resp.Status)
	assert.NotEmpty(t, resp.Warnings)
	require.Len(t, resp.Outcomes, 2)
	assert.ErrorIs(t, resp.Outcomes[1].Err, errSMTPDown)

	require.Len(t, log.errors, 1)
	assert.Contains(t, log.errors[0], "requester confirmation failed")
	assert.NotContains(t, log.errors[0], "jane@example.com")
	assert.Contains(t, log.errors[0], "connection refused")
	assert.Equal(t, []string{"consultation:completed_with_warning"}, m.statuses)
}

func TestExecute_ValidationFailureNeverNotifies(t *testing.T) {
	n := &fakeNotifier{}
	m := &fakeMetrics{}
	log := &recordingLogger{}
	uc := newTestUseCase(n, m, log)

	req := validRequest()
	req.Date = "2026-10-20"
	req.Time = "11:00"

	resp, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrSlotMismatch)
	assert.Nil(t, resp)
	assert.Empty(t, n.calls)
	assert.Len(t, log.warns, 1)
	assert.Equal(t, []string{"consultation:failed"}, m.statuses)
}

func TestExecute_PastDateNeverNotifies(t *testing.T) {
	n := &fakeNotifier{}
	uc := newTestUseCase(n, nil, &recordingLogger{})

	req := validRequest()
	req.Date = "2025-01-04"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, n.calls)
}

func TestExecute_CanceledRequestContextStillNotifies(t *testing.T) {
	n := &fakeNotifier{}
	uc := newTestUseCase(n, nil, &recordingLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, resp.Status)
	assert.Len(t, n.calls, 2)
}

func TestExecute_ContactDataLoggedAtDebugOnly(t *testing.T) {
	n := &fakeNotifier{fail: map[domain.TemplateKind]error{
		domain.TemplateRequesterConsultationConfirmation: errSMTPDown,
	}}
	log := &recordingLogger{}
	uc := newTestUseCase(n, nil, log)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	for _, lines := range [][]string{log.infos, log.warns, log.errors} {
		for _, line := range lines {
			assert.NotContains(t, line, "jane@example.com")
		}
	}
	require.NotEmpty(t, log.infos)
	assert.Contains(t, log.infos[0], resp.SubmissionID.String())

	require.Len(t, log.debugs, 1)
	assert.Contains(t, log.debugs[0], "email=jane@example.com")
}
