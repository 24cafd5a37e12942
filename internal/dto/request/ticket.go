package request

type IssueTicketRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
}

type CheckInRequest struct {
	QRCode string `json:"qr_code" validate:"required,max=80"`
}
