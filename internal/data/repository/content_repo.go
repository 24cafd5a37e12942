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

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error)
	FindAll(ctx context.Context, publishedOnly bool) ([]*entity.Content, error)
	Update(ctx context.Context, content *entity.Content) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewContentRepository(db database.Querier, log *zap.Logger) ContentRepository {
	return &contentRepository{
		db:  db,
		log: log.With(zap.String("repository", "content")),
	}
}

const contentColumns = `id, type, title, body, image_url, language, is_published, created_at, updated_at`

func scanContent(row rowScanner) (*entity.Content, error) {
	var c entity.Content
	err := row.Scan(&c.ID, &c.Type, &c.Title, &c.Body, &c.ImageURL, &c.Language, &c.IsPublished, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contentRepository) Create(ctx context.Context, c *entity.Content) error {
	query := `
		INSERT INTO contents (id, type, title, body, image_url, language, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query, c.ID, c.Type, c.Title, c.Body, c.ImageURL, c.Language, c.IsPublished, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create content", zap.Error(err), zap.String("title", c.Title))
		return fmt.Errorf("create content %s: %w", c.Title, err)
	}
	return nil
}

func (r *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Content, error) {
	c, err := scanContent(r.db.QueryRow(ctx, `SELECT `+contentColumns+` FROM contents WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find content", zap.Error(err), zap.String("content_id", id.String()))
		return nil, fmt.Errorf("find content %s: %w", id, err)
	}
	return c, nil
}

func (r *contentRepository) FindAll(ctx context.Context, publishedOnly bool) ([]*entity.Content, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM contents
		WHERE (NOT $1 OR is_published)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, publishedOnly)
	if err != nil {
		r.log.Error("Failed to list contents", zap.Error(err))
		return nil, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var out []*entity.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contentRepository) Update(ctx context.Context, c *entity.Content) error {
	query := `
		UPDATE contents
		SET type = $2, title = $3, body = $4, image_url = $5, language = $6,
		    is_published = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, c.ID, c.Type, c.Title, c.Body, c.ImageURL, c.Language, c.IsPublished, c.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update content", zap.Error(err), zap.String("content_id", c.ID.String()))
		return fmt.Errorf("update content %s: %w", c.ID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update content %s: %w", c.ID, ErrNoRowsAffected)
	}
	return nil
}

func (r *contentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete content", zap.Error(err), zap.String("content_id", id.String()))
		return fmt.Errorf("delete content %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete content %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
