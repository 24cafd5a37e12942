package request

type CreateBookingRequest struct {
	CustomerName string   `json:"customer_name" validate:"required,max=100"`
	Email        string   `json:"email" validate:"required,email"`
	PackageID    string   `json:"package_id" validate:"required,uuid"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	NumVisitors  int      `json:"num_visitors" validate:"omitempty,gte=1"`
	TotalPrice   *float64 `json:"total_price,omitempty" validate:"omitempty,gte=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
