package request

type CreateEquipmentRequest struct {
	Name        string  `json:"name" validate:"required,max=150"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"max=50"`
	PricePerDay float64 `json:"price_per_day" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// QuoteRequest is read from the query string; dates are parsed leniently.
type QuoteRequest struct {
	EquipmentID string `validate:"required,uuid"`
	RentalDate  string
	ReturnDate  string
	Quantity    int `validate:"gte=1"`
}

type CreateRentalRequest struct {
	EquipmentID   string `json:"equipment_id" validate:"required,uuid"`
	CustomerName  string `json:"customer_name" validate:"required,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,max=20"`
	RentalDate    string `json:"rental_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date" validate:"required,datetime=2006-01-02"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
}

type UpdateRentalStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active returned cancelled"`
}
