package entity

import "github.com/google/uuid"

// Package is a tour package; DestinationID links check-ins to a visitor counter.
type Package struct {
	Base
	DestinationID *uuid.UUID `db:"destination_id"`
	Name          string     `db:"name"`
	Price         float64    `db:"price"`
	Features      string     `db:"features"`
}
