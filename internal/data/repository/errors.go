package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateQRCode   = errors.New("qr code already exists")
	ErrDuplicateBooking  = errors.New("ticket already issued for booking")
	ErrReferenced        = errors.New("row is still referenced")
	ErrMissingReference  = errors.New("referenced row does not exist")
	ErrNoRowsAffected    = errors.New("no rows affected")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var constraintErrors = map[string]error{
	"users_username_key":     ErrDuplicateUsername,
	"users_email_key":        ErrDuplicateEmail,
	"tickets_qr_code_key":    ErrDuplicateQRCode,
	"tickets_booking_id_key": ErrDuplicateBooking,
}

// mapInsertError turns constraint violations into sentinels and leaves other errors alone.
func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if sentinel, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return sentinel
		}
	case pgForeignKeyViolation:
		return ErrMissingReference
	}
	return err
}

// mapDeleteError reports FK violations on delete as ErrReferenced.
func mapDeleteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrReferenced
	}
	return err
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
