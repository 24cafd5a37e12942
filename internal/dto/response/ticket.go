package response

import (
	"time"

	"pulau-harapan/internal/data/entity"
)

type TicketResponse struct {
	ID          string              `json:"id"`
	BookingID   string              `json:"booking_id"`
	QRCode      string              `json:"qr_code"`
	Status      entity.TicketStatus `json:"status"`
	CheckInTime *time.Time          `json:"check_in_time,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type CheckInResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	TicketID    string    `json:"ticket_id"`
	CheckInTime time.Time `json:"check_in_time"`
}

type TicketBookingSnapshot struct {
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	NumVisitors  int    `json:"num_visitors"`
}

type ValidateTicketResponse struct {
	Valid   bool                   `json:"valid"`
	Status  entity.TicketStatus    `json:"status,omitempty"`
	Message string                 `json:"message"`
	Booking *TicketBookingSnapshot `json:"booking,omitempty"`
}

func TicketToResponse(t *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID.String(),
		BookingID:   t.BookingID.String(),
		QRCode:      t.QRCode,
		Status:      t.Status,
		CheckInTime: t.CheckInTime,
		CreatedAt:   t.CreatedAt,
	}
}
