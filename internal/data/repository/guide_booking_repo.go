package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GuideBookingRepository interface {
	Create(ctx context.Context, booking *entity.GuideBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GuideBooking, error)
	FindAll(ctx context.Context) ([]*entity.GuideBooking, error)
	// CountOverlapping counts non-cancelled bookings of guideID intersecting [start, end).
	CountOverlapping(ctx context.Context, guideID uuid.UUID, start, end time.Time) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.GuideBookingStatus) error
}

type guideBookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGuideBookingRepository(db database.Querier, log *zap.Logger) GuideBookingRepository {
	return &guideBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "guide_booking")),
	}
}

const guideBookingSelect = `
	SELECT b.id, b.guide_id, b.customer_name, b.customer_phone, b.booking_date, b.duration_days,
	       b.notes, b.total_price, b.status, b.created_at, b.updated_at, COALESCE(g.name, '')
	FROM guide_bookings b
	LEFT JOIN tour_guides g ON g.id = b.guide_id
`

func scanGuideBooking(row rowScanner) (*entity.GuideBooking, error) {
	var b entity.GuideBooking
	err := row.Scan(&b.ID, &b.GuideID, &b.CustomerName, &b.CustomerPhone, &b.BookingDate,
		&b.DurationDays, &b.Notes, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.GuideName)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *guideBookingRepository) Create(ctx context.Context, b *entity.GuideBooking) error {
	query := `
		INSERT INTO guide_bookings (id, guide_id, customer_name, customer_phone, booking_date,
		                            duration_days, notes, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query, b.ID, b.GuideID, b.CustomerName, b.CustomerPhone, b.BookingDate,
		b.DurationDays, b.Notes, b.TotalPrice, b.Status, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			r.log.Error("Failed to create guide booking", zap.Error(err), zap.String("guide_id", b.GuideID.String()))
		}
		return fmt.Errorf("create guide booking: %w", mapped)
	}
	return nil
}

func (r *guideBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GuideBooking, error) {
	b, err := scanGuideBooking(r.db.QueryRow(ctx, guideBookingSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guide booking", zap.Error(err), zap.String("booking_id", id.String()))
		return nil, fmt.Errorf("find guide booking %s: %w", id, err)
	}
	return b, nil
}

func (r *guideBookingRepository) FindAll(ctx context.Context) ([]*entity.GuideBooking, error) {
	rows, err := r.db.Query(ctx, guideBookingSelect+` ORDER BY b.created_at DESC`)
	if err != nil {
		r.log.Error("Failed to list guide bookings", zap.Error(err))
		return nil, fmt.Errorf("list guide bookings: %w", err)
	}
	defer rows.Close()

	var out []*entity.GuideBooking
	for rows.Next() {
		b, err := scanGuideBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guide booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *guideBookingRepository) CountOverlapping(ctx context.Context, guideID uuid.UUID, start, end time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM guide_bookings
		WHERE guide_id = $1
		  AND status <> 'cancelled'
		  AND booking_date < $3
		  AND booking_date + GREATEST(duration_days, 1) > $2
	`

	var n int64
	if err := r.db.QueryRow(ctx, query, guideID, start, end).Scan(&n); err != nil {
		r.log.Error("Failed to count overlapping bookings", zap.Error(err), zap.String("guide_id", guideID.String()))
		return 0, fmt.Errorf("count overlapping bookings: %w", err)
	}
	return n, nil
}

func (r *guideBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.GuideBookingStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE guide_bookings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		r.log.Error("Failed to update guide booking status", zap.Error(err), zap.String("booking_id", id.String()))
		return fmt.Errorf("update guide booking status %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update guide booking status %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
