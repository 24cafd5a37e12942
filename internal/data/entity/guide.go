package entity

import (
	"time"

	"github.com/google/uuid"
)

type TourGuide struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Specialty   string  `db:"specialty"`
	Languages   string  `db:"languages"`
	PricePerDay float64 `db:"price_per_day"`
	Phone       *string `db:"phone"`
	ImageURL    *string `db:"image_url"`
	Rating      float64 `db:"rating"`
	IsAvailable bool    `db:"is_available"`
}

type GuideBookingStatus string

const (
	GuideBookingStatusPending   GuideBookingStatus = "pending"
	GuideBookingStatusConfirmed GuideBookingStatus = "confirmed"
	GuideBookingStatusCompleted GuideBookingStatus = "completed"
	GuideBookingStatusCancelled GuideBookingStatus = "cancelled"
)

var guideBookingTransitions = map[GuideBookingStatus][]GuideBookingStatus{
	GuideBookingStatusPending:   {GuideBookingStatusConfirmed, GuideBookingStatusCancelled},
	GuideBookingStatusConfirmed: {GuideBookingStatusCompleted, GuideBookingStatusCancelled},
}

func (s GuideBookingStatus) Valid() bool {
	switch s {
	case GuideBookingStatusPending, GuideBookingStatusConfirmed,
		GuideBookingStatusCompleted, GuideBookingStatusCancelled:
		return true
	}
	return false
}

func (s GuideBookingStatus) CanTransitionTo(next GuideBookingStatus) bool {
	for _, allowed := range guideBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type GuideBooking struct {
	Base
	GuideID       uuid.UUID          `db:"guide_id"`
	CustomerName  string             `db:"customer_name"`
	CustomerPhone string             `db:"customer_phone"`
	BookingDate   time.Time          `db:"booking_date"`
	DurationDays  int                `db:"duration_days"`
	Notes         *string            `db:"notes"`
	TotalPrice    float64            `db:"total_price"`
	Status        GuideBookingStatus `db:"status"`

	GuideName string `db:"-"`
}

// EndDate is the exclusive end of the booked range.
func (b *GuideBooking) EndDate() time.Time {
	days := b.DurationDays
	if days < 1 {
		days = 1
	}
	return b.BookingDate.AddDate(0, 0, days)
}
