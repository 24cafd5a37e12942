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

type DestinationRepository interface {
	Create(ctx context.Context, destination *entity.Destination) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error)
	FindAll(ctx context.Context) ([]*entity.Destination, error)
	IncrementVisitors(ctx context.Context, id uuid.UUID, count int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type destinationRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewDestinationRepository(db database.Querier, log *zap.Logger) DestinationRepository {
	return &destinationRepository{
		db:  db,
		log: log.With(zap.String("repository", "destination")),
	}
}

const destinationColumns = `id, name, description, type, image_url, capacity, current_visitors,
	latitude, longitude, created_at, updated_at`

func scanDestination(row rowScanner) (*entity.Destination, error) {
	var d entity.Destination
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.Type,
		&d.ImageURL,
		&d.Capacity,
		&d.CurrentVisitors,
		&d.Latitude,
		&d.Longitude,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *destinationRepository) Create(ctx context.Context, d *entity.Destination) error {
	query := `
		INSERT INTO destinations (id, name, description, type, image_url, capacity,
		                          current_visitors, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Description, d.Type, d.ImageURL, d.Capacity,
		d.CurrentVisitors, d.Latitude, d.Longitude, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create destination", zap.Error(err), zap.String("name", d.Name))
		return fmt.Errorf("create destination %s: %w", d.Name, err)
	}
	return nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	d, err := scanDestination(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find destination", zap.Error(err), zap.String("destination_id", id.String()))
		return nil, fmt.Errorf("find destination %s: %w", id, err)
	}
	return d, nil
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]*entity.Destination, error) {
	rows, err := r.db.Query(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY name`)
	if err != nil {
		r.log.Error("Failed to list destinations", zap.Error(err))
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan destination: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// IncrementVisitors adds count to current_visitors atomically.
func (r *destinationRepository) IncrementVisitors(ctx context.Context, id uuid.UUID, count int) error {
	result, err := r.db.Exec(ctx,
		`UPDATE destinations SET current_visitors = current_visitors + $2, updated_at = NOW() WHERE id = $1`,
		id, count)
	if err != nil {
		r.log.Error("Failed to increment visitors", zap.Error(err), zap.String("destination_id", id.String()))
		return fmt.Errorf("increment visitors %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("increment visitors %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}

func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM destinations WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete destination", zap.Error(err), zap.String("destination_id", id.String()))
		return fmt.Errorf("delete destination %s: %w", id, mapDeleteError(err))
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete destination %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
