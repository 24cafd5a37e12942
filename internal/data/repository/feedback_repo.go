package repository

import (
	"context"
	"errors"
	"fmt"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	// FindAll lists newest first; a non-nil kind restricts to that type.
	FindAll(ctx context.Context, kind *entity.FeedbackType) ([]*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
}

type feedbackRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFeedbackRepository(db database.Querier, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

const feedbackColumns = `id, type, subject, message, destination_id, priority, status, created_at, updated_at`

func scanFeedback(row rowScanner) (*entity.Feedback, error) {
	var f entity.Feedback
	err := row.Scan(&f.ID, &f.Type, &f.Subject, &f.Message, &f.DestinationID, &f.Priority, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *feedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	query := `
		INSERT INTO feedback (id, type, subject, message, destination_id, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query, f.ID, f.Type, f.Subject, f.Message, f.DestinationID, f.Priority, f.Status, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			r.log.Error("Failed to create feedback", zap.Error(err), zap.String("type", string(f.Type)))
		}
		return fmt.Errorf("create feedback: %w", mapped)
	}
	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	f, err := scanFeedback(r.db.QueryRow(ctx, `SELECT `+feedbackColumns+` FROM feedback WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find feedback", zap.Error(err), zap.String("feedback_id", id.String()))
		return nil, fmt.Errorf("find feedback %s: %w", id, err)
	}
	return f, nil
}

func (r *feedbackRepository) FindAll(ctx context.Context, kind *entity.FeedbackType) ([]*entity.Feedback, error) {
	var arg any
	if kind != nil {
		arg = string(*kind)
	}

	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback
		WHERE ($1::text IS NULL OR type = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		r.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []*entity.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *feedbackRepository) Update(ctx context.Context, f *entity.Feedback) error {
	result, err := r.db.Exec(ctx,
		`UPDATE feedback SET priority = $2, status = $3, updated_at = $4 WHERE id = $1`,
		f.ID, f.Priority, f.Status, f.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update feedback", zap.Error(err), zap.String("feedback_id", f.ID.String()))
		return fmt.Errorf("update feedback %s: %w", f.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update feedback %s: %w", f.ID, ErrNoRowsAffected)
	}
	return nil
}
