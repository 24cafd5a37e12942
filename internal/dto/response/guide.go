package response

import (
	"time"

	"pulau-harapan/internal/data/entity"
)

type GuideResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Specialty   string  `json:"specialty"`
	Languages   string  `json:"languages"`
	PricePerDay float64 `json:"price_per_day"`
	Phone       *string `json:"phone,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"is_available"`
}

type GuideBookingResponse struct {
	ID            string                    `json:"id"`
	GuideID       string                    `json:"guide_id"`
	GuideName     string                    `json:"guide_name"`
	CustomerName  string                    `json:"customer_name"`
	CustomerPhone string                    `json:"customer_phone"`
	BookingDate   string                    `json:"booking_date"`
	DurationDays  int                       `json:"duration_days"`
	Notes         *string                   `json:"notes,omitempty"`
	TotalPrice    float64                   `json:"total_price"`
	Status        entity.GuideBookingStatus `json:"status"`
	CreatedAt     time.Time                 `json:"created_at"`
}

func GuideToResponse(g *entity.TourGuide) GuideResponse {
	return GuideResponse{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		Specialty:   g.Specialty,
		Languages:   g.Languages,
		PricePerDay: g.PricePerDay,
		Phone:       g.Phone,
		ImageURL:    g.ImageURL,
		Rating:      g.Rating,
		IsAvailable: g.IsAvailable,
	}
}

func GuideBookingToResponse(b *entity.GuideBooking) GuideBookingResponse {
	return GuideBookingResponse{
		ID:            b.ID.String(),
		GuideID:       b.GuideID.String(),
		GuideName:     b.GuideName,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		BookingDate:   b.BookingDate.Format(entity.DateLayout),
		DurationDays:  b.DurationDays,
		Notes:         b.Notes,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}
