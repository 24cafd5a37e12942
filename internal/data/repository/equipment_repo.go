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

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.CampingEquipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CampingEquipment, error)
	FindAll(ctx context.Context, availableOnly bool) ([]*entity.CampingEquipment, error)

	// Reserve takes quantity units out of available stock, failing with
	// ErrNoRowsAffected when fewer remain.
	Reserve(ctx context.Context, id uuid.UUID, quantity int) error
	// Release hands quantity units back, never exceeding total stock.
	Release(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type equipmentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewEquipmentRepository(db database.Querier, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

const equipmentColumns = `id, name, description, category, price_per_day, stock, available,
	is_available, image_url, created_at, updated_at`

func scanEquipment(row rowScanner) (*entity.CampingEquipment, error) {
	var e entity.CampingEquipment
	err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Category, &e.PricePerDay, &e.Stock,
		&e.Available, &e.IsAvailable, &e.ImageURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipmentRepository) Create(ctx context.Context, e *entity.CampingEquipment) error {
	query := `
		INSERT INTO camping_equipment (id, name, description, category, price_per_day, stock,
		                               available, is_available, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query, e.ID, e.Name, e.Description, e.Category, e.PricePerDay,
		e.Stock, e.Available, e.IsAvailable, e.ImageURL, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create equipment", zap.Error(err), zap.String("name", e.Name))
		return fmt.Errorf("create equipment %s: %w", e.Name, err)
	}
	return nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CampingEquipment, error) {
	e, err := scanEquipment(r.db.QueryRow(ctx, `SELECT `+equipmentColumns+` FROM camping_equipment WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find equipment", zap.Error(err), zap.String("equipment_id", id.String()))
		return nil, fmt.Errorf("find equipment %s: %w", id, err)
	}
	return e, nil
}

func (r *equipmentRepository) FindAll(ctx context.Context, availableOnly bool) ([]*entity.CampingEquipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM camping_equipment
		WHERE (NOT $1 OR (is_available AND available > 0))
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, availableOnly)
	if err != nil {
		r.log.Error("Failed to list equipment", zap.Error(err))
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var out []*entity.CampingEquipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *equipmentRepository) Reserve(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
		UPDATE camping_equipment
		SET available = available - $2, updated_at = NOW()
		WHERE id = $1 AND available >= $2
	`

	result, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		r.log.Error("Failed to reserve equipment",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
			zap.Int("quantity", quantity),
		)
		return fmt.Errorf("reserve equipment %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("reserve equipment %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}

func (r *equipmentRepository) Release(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
		UPDATE camping_equipment
		SET available = LEAST(stock, available + $2), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		r.log.Error("Failed to release equipment",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
			zap.Int("quantity", quantity),
		)
		return fmt.Errorf("release equipment %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("release equipment %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM camping_equipment WHERE id = $1`, id)
	if err != nil {
		mapped := mapDeleteError(err)
		if mapped == err {
			r.log.Error("Failed to delete equipment", zap.Error(err), zap.String("equipment_id", id.String()))
		}
		return fmt.Errorf("delete equipment %s: %w", id, mapped)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete equipment %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
