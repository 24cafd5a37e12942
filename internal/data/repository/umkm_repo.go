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

type UMKMRepository interface {
	Create(ctx context.Context, umkm *entity.UMKM) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UMKM, error)
	FindAll(ctx context.Context) ([]*entity.UMKM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type umkmRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUMKMRepository(db database.Querier, log *zap.Logger) UMKMRepository {
	return &umkmRepository{
		db:  db,
		log: log.With(zap.String("repository", "umkm")),
	}
}

const umkmColumns = `id, owner_id, name, description, category, image_url, location, rating,
	is_verified, created_at, updated_at`

func scanUMKM(row rowScanner) (*entity.UMKM, error) {
	var u entity.UMKM
	err := row.Scan(&u.ID, &u.OwnerID, &u.Name, &u.Description, &u.Category, &u.ImageURL,
		&u.Location, &u.Rating, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *umkmRepository) Create(ctx context.Context, u *entity.UMKM) error {
	query := `
		INSERT INTO umkm (id, owner_id, name, description, category, image_url, location,
		                  rating, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query, u.ID, u.OwnerID, u.Name, u.Description, u.Category,
		u.ImageURL, u.Location, u.Rating, u.IsVerified, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			r.log.Error("Failed to create umkm", zap.Error(err), zap.String("name", u.Name))
		}
		return fmt.Errorf("create umkm %s: %w", u.Name, mapped)
	}
	return nil
}

func (r *umkmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UMKM, error) {
	u, err := scanUMKM(r.db.QueryRow(ctx, `SELECT `+umkmColumns+` FROM umkm WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find umkm", zap.Error(err), zap.String("umkm_id", id.String()))
		return nil, fmt.Errorf("find umkm %s: %w", id, err)
	}
	return u, nil
}

func (r *umkmRepository) FindAll(ctx context.Context) ([]*entity.UMKM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+umkmColumns+` FROM umkm ORDER BY name`)
	if err != nil {
		r.log.Error("Failed to list umkm", zap.Error(err))
		return nil, fmt.Errorf("list umkm: %w", err)
	}
	defer rows.Close()

	var out []*entity.UMKM
	for rows.Next() {
		u, err := scanUMKM(rows)
		if err != nil {
			return nil, fmt.Errorf("scan umkm: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *umkmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM umkm WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete umkm", zap.Error(err), zap.String("umkm_id", id.String()))
		return fmt.Errorf("delete umkm %s: %w", id, mapDeleteError(err))
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete umkm %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
