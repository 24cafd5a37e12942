package wire

import (
	"net/http"

	"pulau-harapan/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler, auth func(http.Handler) http.Handler) {
	r.Route("/tickets", func(r chi.Router) {
		r.Get("/", ticketHandler.List)
		r.Post("/", ticketHandler.Issue)
		r.Get("/booking/{bookingID}", ticketHandler.GetByBooking)
		r.Post("/check-in", ticketHandler.CheckIn)
		r.Get("/validate/{code}", ticketHandler.Validate)
		r.Get("/qr/{code}.png", ticketHandler.QRImage)

		r.With(auth).Put("/{id}/expire", ticketHandler.Expire)
	})
}
