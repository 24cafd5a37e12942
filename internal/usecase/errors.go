package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error classes. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

var (
	ErrTicketAlreadyUsed  = fmt.Errorf("%w: ticket already used", ErrInvalidInput)
	ErrTicketExpired      = fmt.Errorf("%w: ticket expired", ErrInvalidInput)
	ErrInvalidRole        = fmt.Errorf("%w: invalid role", ErrInvalidInput)
	ErrInvalidTransition  = fmt.Errorf("%w: invalid status transition", ErrInvalidInput)
	ErrDuplicateUsername  = fmt.Errorf("%w: username already registered", ErrConflict)
	ErrDuplicateEmail     = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrDuplicateTicket    = fmt.Errorf("%w: duplicate ticket code", ErrConflict)
	ErrGuideUnavailable   = fmt.Errorf("%w: guide already booked for these dates", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	ErrInactiveAccount    = fmt.Errorf("%w: account is inactive", ErrForbidden)
)

func notFound(what string) error {
	return fmt.Errorf("%w: %s not found", ErrNotFound, what)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidInput("invalid %s id", what)
	}
	return id, nil
}
