package entity

import "github.com/google/uuid"

// UMKM is a local micro/small business listing.
type UMKM struct {
	Base
	OwnerID     *uuid.UUID `db:"owner_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Category    string     `db:"category"`
	ImageURL    *string    `db:"image_url"`
	Location    *string    `db:"location"`
	Rating      float64    `db:"rating"`
	IsVerified  bool       `db:"is_verified"`
}

type Product struct {
	Base
	UMKMID      uuid.UUID `db:"umkm_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	ImageURL    *string   `db:"image_url"`
}
