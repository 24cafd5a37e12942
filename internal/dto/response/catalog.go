package response

import (
	"time"

	"pulau-harapan/internal/data/entity"

	"github.com/google/uuid"
)

type DestinationResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	ImageURL        *string  `json:"image_url,omitempty"`
	Capacity        int      `json:"capacity"`
	CurrentVisitors int      `json:"current_visitors"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
}

type PackageResponse struct {
	ID            string  `json:"id"`
	DestinationID *string `json:"destination_id,omitempty"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Features      string  `json:"features"`
}

type UMKMResponse struct {
	ID          string  `json:"id"`
	OwnerID     *string `json:"owner_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    *string `json:"image_url,omitempty"`
	Location    *string `json:"location,omitempty"`
	Rating      float64 `json:"rating"`
	IsVerified  bool    `json:"is_verified"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	UMKMID      string    `json:"umkm_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func DestinationToResponse(d *entity.Destination) DestinationResponse {
	return DestinationResponse{
		ID:              d.ID.String(),
		Name:            d.Name,
		Description:     d.Description,
		Type:            d.Type,
		ImageURL:        d.ImageURL,
		Capacity:        d.Capacity,
		CurrentVisitors: d.CurrentVisitors,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
	}
}

func PackageToResponse(p *entity.Package) PackageResponse {
	return PackageResponse{
		ID:            p.ID.String(),
		DestinationID: optionalID(p.DestinationID),
		Name:          p.Name,
		Price:         p.Price,
		Features:      p.Features,
	}
}

func UMKMToResponse(u *entity.UMKM) UMKMResponse {
	return UMKMResponse{
		ID:          u.ID.String(),
		OwnerID:     optionalID(u.OwnerID),
		Name:        u.Name,
		Description: u.Description,
		Category:    u.Category,
		ImageURL:    u.ImageURL,
		Location:    u.Location,
		Rating:      u.Rating,
		IsVerified:  u.IsVerified,
	}
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		UMKMID:      p.UMKMID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
