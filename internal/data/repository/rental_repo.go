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

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.EquipmentRental) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentRental, error)
	// FindByIDForUpdate locks the rental row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.EquipmentRental, error)
	FindAll(ctx context.Context) ([]*entity.EquipmentRental, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RentalStatus) error
	// MarkStockReleased sets stock_released once; false means it was already set.
	MarkStockReleased(ctx context.Context, id uuid.UUID) (bool, error)
}

type rentalRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRentalRepository(db database.Querier, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

const rentalSelect = `
	SELECT r.id, r.equipment_id, r.customer_name, r.customer_phone, r.rental_date, r.return_date,
	       r.quantity, r.total_price, r.status, r.stock_released, r.created_at, r.updated_at,
	       COALESCE(e.name, '')
	FROM equipment_rentals r
	LEFT JOIN camping_equipment e ON e.id = r.equipment_id
`

func scanRental(row rowScanner) (*entity.EquipmentRental, error) {
	var r entity.EquipmentRental
	err := row.Scan(&r.ID, &r.EquipmentID, &r.CustomerName, &r.CustomerPhone, &r.RentalDate,
		&r.ReturnDate, &r.Quantity, &r.TotalPrice, &r.Status, &r.StockReleased, &r.CreatedAt,
		&r.UpdatedAt, &r.EquipmentName)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (rr *rentalRepository) Create(ctx context.Context, r *entity.EquipmentRental) error {
	query := `
		INSERT INTO equipment_rentals (id, equipment_id, customer_name, customer_phone, rental_date,
		                               return_date, quantity, total_price, status, stock_released,
		                               created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := rr.db.Exec(ctx, query, r.ID, r.EquipmentID, r.CustomerName, r.CustomerPhone,
		r.RentalDate, r.ReturnDate, r.Quantity, r.TotalPrice, r.Status, r.StockReleased,
		r.CreatedAt, r.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			rr.log.Error("Failed to create rental",
				zap.Error(err),
				zap.String("equipment_id", r.EquipmentID.String()),
			)
		}
		return fmt.Errorf("create rental: %w", mapped)
	}
	return nil
}

func (rr *rentalRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.EquipmentRental, error) {
	r, err := scanRental(rr.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find rental", zap.Error(err), zap.String("rental_id", id.String()))
		return nil, fmt.Errorf("find rental %s: %w", id, err)
	}
	return r, nil
}

func (rr *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EquipmentRental, error) {
	return rr.findOne(ctx, rentalSelect+` WHERE r.id = $1`, id)
}

func (rr *rentalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.EquipmentRental, error) {
	return rr.findOne(ctx, rentalSelect+` WHERE r.id = $1 FOR UPDATE OF r`, id)
}

func (rr *rentalRepository) FindAll(ctx context.Context) ([]*entity.EquipmentRental, error) {
	rows, err := rr.db.Query(ctx, rentalSelect+` ORDER BY r.created_at DESC`)
	if err != nil {
		rr.log.Error("Failed to list rentals", zap.Error(err))
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	var out []*entity.EquipmentRental
	for rows.Next() {
		r, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (rr *rentalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RentalStatus) error {
	result, err := rr.db.Exec(ctx,
		`UPDATE equipment_rentals SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		rr.log.Error("Failed to update rental status",
			zap.Error(err),
			zap.String("rental_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update rental status %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update rental status %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}

func (rr *rentalRepository) MarkStockReleased(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := rr.db.Exec(ctx,
		`UPDATE equipment_rentals SET stock_released = TRUE WHERE id = $1 AND NOT stock_released`, id)
	if err != nil {
		rr.log.Error("Failed to mark stock released", zap.Error(err), zap.String("rental_id", id.String()))
		return false, fmt.Errorf("mark stock released %s: %w", id, err)
	}
	return result.RowsAffected() == 1, nil
}
