package response

import (
	"time"

	"pulau-harapan/internal/data/entity"
)

type EquipmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PricePerDay float64   `json:"price_per_day"`
	Stock       int       `json:"stock"`
	Available   int       `json:"available"`
	IsAvailable bool      `json:"is_available"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuoteResponse struct {
	EquipmentID string  `json:"equipment_id"`
	Days        int     `json:"days"`
	PricePerDay float64 `json:"price_per_day"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

type RentalResponse struct {
	ID            string              `json:"id"`
	EquipmentID   string              `json:"equipment_id"`
	EquipmentName string              `json:"equipment_name"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	RentalDate    string              `json:"rental_date"`
	ReturnDate    string              `json:"return_date"`
	Quantity      int                 `json:"quantity"`
	TotalPrice    float64             `json:"total_price"`
	Status        entity.RentalStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}

func EquipmentToResponse(e *entity.CampingEquipment) EquipmentResponse {
	return EquipmentResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		PricePerDay: e.PricePerDay,
		Stock:       e.Stock,
		Available:   e.Available,
		IsAvailable: e.IsAvailable,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
	}
}

func RentalToResponse(r *entity.EquipmentRental) RentalResponse {
	return RentalResponse{
		ID:            r.ID.String(),
		EquipmentID:   r.EquipmentID.String(),
		EquipmentName: r.EquipmentName,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		RentalDate:    r.RentalDate.Format(entity.DateLayout),
		ReturnDate:    r.ReturnDate.Format(entity.DateLayout),
		Quantity:      r.Quantity,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}
