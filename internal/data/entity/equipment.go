package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampingEquipment keeps 0 <= Available <= Stock.
type CampingEquipment struct {
	Base
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Category    string  `db:"category"`
	PricePerDay float64 `db:"price_per_day"`
	Stock       int     `db:"stock"`
	Available   int     `db:"available"`
	IsAvailable bool    `db:"is_available"`
	ImageURL    *string `db:"image_url"`
}

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusActive    RentalStatus = "active"
	RentalStatusReturned  RentalStatus = "returned"
	RentalStatusCancelled RentalStatus = "cancelled"
)

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending: {RentalStatusActive, RentalStatusReturned, RentalStatusCancelled},
	RentalStatusActive:  {RentalStatusReturned, RentalStatusCancelled},
}

func (s RentalStatus) Valid() bool {
	switch s {
	case RentalStatusPending, RentalStatusActive, RentalStatusReturned, RentalStatusCancelled:
		return true
	}
	return false
}

func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ReleasesStock reports whether entering s hands the rented units back.
func (s RentalStatus) ReleasesStock() bool {
	return s == RentalStatusReturned || s == RentalStatusCancelled
}

type EquipmentRental struct {
	Base
	EquipmentID   uuid.UUID    `db:"equipment_id"`
	CustomerName  string       `db:"customer_name"`
	CustomerPhone string       `db:"customer_phone"`
	RentalDate    time.Time    `db:"rental_date"`
	ReturnDate    time.Time    `db:"return_date"`
	Quantity      int          `db:"quantity"`
	TotalPrice    float64      `db:"total_price"`
	Status        RentalStatus `db:"status"`
	StockReleased bool         `db:"stock_released"`

	// Snapshot for responses; not a column.
	EquipmentName string `db:"-"`
}
