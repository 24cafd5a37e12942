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

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Ticket, error)
	FindByQRCode(ctx context.Context, qrCode string) (*entity.Ticket, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
	CountAll(ctx context.Context) (int64, error)

	// MarkUsed flips a valid ticket to used. It returns (nil, nil) when no
	// valid ticket carries qrCode.
	MarkUsed(ctx context.Context, qrCode string, at time.Time) (*entity.Ticket, error)
	// Expire flips a valid ticket to expired; (nil, nil) when id is not valid.
	Expire(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTicketRepository(db database.Querier, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketColumns = `id, booking_id, qr_code, status, check_in_time, created_at, updated_at`

func scanTicket(row rowScanner) (*entity.Ticket, error) {
	var t entity.Ticket
	if err := row.Scan(&t.ID, &t.BookingID, &t.QRCode, &t.Status, &t.CheckInTime, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a ticket. A reused QR code yields ErrDuplicateQRCode, a
// second ticket for the same booking ErrDuplicateBooking.
func (r *ticketRepository) Create(ctx context.Context, t *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, booking_id, qr_code, status, check_in_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query, t.ID, t.BookingID, t.QRCode, t.Status, t.CheckInTime, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("booking_id", t.BookingID.String()),
			)
		}
		return fmt.Errorf("create ticket for booking %s: %w", t.BookingID, mapped)
	}
	return nil
}

func (r *ticketRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Ticket, error) {
	t, err := scanTicket(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket", zap.Error(err))
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return t, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return r.findOne(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, id)
}

func (r *ticketRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Ticket, error) {
	return r.findOne(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE booking_id = $1`, bookingID)
}

func (r *ticketRepository) FindByQRCode(ctx context.Context, qrCode string) (*entity.Ticket, error) {
	return r.findOne(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE qr_code = $1`, qrCode)
}

func (r *ticketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *ticketRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&total); err != nil {
		r.log.Error("Failed to count tickets", zap.Error(err))
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return total, nil
}

func (r *ticketRepository) MarkUsed(ctx context.Context, qrCode string, at time.Time) (*entity.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = 'used', check_in_time = $2, updated_at = $2
		WHERE qr_code = $1 AND status = 'valid'
		RETURNING ` + ticketColumns

	return r.findOne(ctx, query, qrCode, at)
}

func (r *ticketRepository) Expire(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = 'expired', updated_at = NOW()
		WHERE id = $1 AND status = 'valid'
		RETURNING ` + ticketColumns

	return r.findOne(ctx, query, id)
}
