package request

type CreateGuideRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description"`
	Specialty   string  `json:"specialty" validate:"max=100"`
	Languages   string  `json:"languages" validate:"max=200"`
	PricePerDay float64 `json:"price_per_day" validate:"gte=0"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	ImageURL    *string `json:"image_url,omitempty"`
}

type CreateGuideBookingRequest struct {
	GuideID       string  `json:"guide_id" validate:"required,uuid"`
	CustomerName  string  `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string  `json:"customer_phone" validate:"required,max=20"`
	BookingDate   string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	DurationDays  int     `json:"duration_days" validate:"omitempty,gte=1,lte=60"`
	Notes         *string `json:"notes,omitempty"`
}

type UpdateGuideBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
