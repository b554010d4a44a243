package delivery

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

const insertQuery = "INSERT INTO notification_deliveries " +
	"(id,submission_id,template_kind,recipient,transport,status,error_message,created_at) " +
	"VALUES ($1,$2,$3,$4,$5,$6,$7,$8)"

func TestRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	record := &domain.DeliveryRecord{
		ID:           uuid.New(),
		SubmissionID: uuid.New(),
		Kind:         domain.TemplateOperatorConsultationAlert,
		Recipient:    "codeclarityteam@gmail.com",
		Transport:    "resend",
		Status:       domain.DeliverySent,
		CreatedAt:    time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs(record.ID, &record.SubmissionID, "operator-consultation-alert", "codeclarityteam@gmail.com",
			"resend", "sent", record.ErrorMessage, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRepository(db).Record(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Record_NilSubmissionStoredAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	errMsg := "delivery failed"
	record := &domain.DeliveryRecord{
		ID:           uuid.New(),
		Kind:         domain.TemplateOperatorBootcampAlert,
		Recipient:    "ops@example.com",
		Transport:    "smtp",
		Status:       domain.DeliveryFailed,
		ErrorMessage: &errMsg,
		CreatedAt:    time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
		WithArgs(record.ID, nil, "operator-bootcamp-alert", "ops@example.com", "smtp", "failed", &errMsg, record.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRepository(db).Record(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Record_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).WillReturnError(errors.New("relation does not exist"))

	err = NewRepository(db).Record(context.Background(), &domain.DeliveryRecord{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, err.Error(), "relation does not exist")
}
