package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketStatusValid   TicketStatus = "valid"
	TicketStatusUsed    TicketStatus = "used"
	TicketStatusExpired TicketStatus = "expired"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusValid, TicketStatusUsed, TicketStatusExpired:
		return true
	}
	return false
}

// Ticket is bound 1:1 to a booking. Status only moves away from valid.
type Ticket struct {
	Base
	BookingID   uuid.UUID    `db:"booking_id"`
	QRCode      string       `db:"qr_code"`
	Status      TicketStatus `db:"status"`
	CheckInTime *time.Time   `db:"check_in_time"`
}
