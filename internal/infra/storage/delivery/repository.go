package delivery

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
	"github.com/mahadtoukaleh/CodeClarity/pkg/psqlbuilder"
)

const tableName = "notification_deliveries"

// Repository журнал доставки уведомлений в PostgreSQL.
// Хранит только исход отправки, сами заявки не сохраняются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record сохраняет исход одной отправки
func (r *Repository) Record(ctx context.Context, record *domain.DeliveryRecord) error {
	// uuid.Nil пишем как NULL: отправка вне заявки
	var submissionID *uuid.UUID
	if record.SubmissionID != uuid.Nil {
		submissionID = &record.SubmissionID
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"submission_id",
			"template_kind",
			"recipient",
			"transport",
			"status",
			"error_message",
			"created_at",
		).
		Values(
			record.ID,
			submissionID,
			string(record.Kind),
			record.Recipient,
			record.Transport,
			string(record.Status),
			record.ErrorMessage,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
