package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether s -> next is a forward move.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	Base
	CustomerName string        `db:"customer_name"`
	Email        string        `db:"email"`
	PackageID    *uuid.UUID    `db:"package_id"`
	Date         time.Time     `db:"date"`
	NumVisitors  int           `db:"num_visitors"`
	TotalPrice   float64       `db:"total_price"`
	Status       BookingStatus `db:"status"`
}

// VisitorCount is the number of people one check-in admits; unset counts as one.
func (b *Booking) VisitorCount() int {
	if b.NumVisitors <= 0 {
		return 1
	}
	return b.NumVisitors
}
