package response

import (
	"time"

	"pulau-harapan/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	CustomerName string               `json:"customer_name"`
	Email        string               `json:"email"`
	PackageID    *string              `json:"package_id,omitempty"`
	Date         string               `json:"date"`
	NumVisitors  int                  `json:"num_visitors"`
	TotalPrice   float64              `json:"total_price"`
	Status       entity.BookingStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID.String(),
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Date:         b.Date.Format(entity.DateLayout),
		NumVisitors:  b.NumVisitors,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
	if b.PackageID != nil {
		id := b.PackageID.String()
		resp.PackageID = &id
	}
	return resp
}
