package wire

import (
	"pulau-harapan/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGuide(r chi.Router, guideHandler *adaptor.GuideHandler) {
	r.Route("/guides", func(r chi.Router) {
		r.Get("/", guideHandler.ListGuides)
		r.Post("/", guideHandler.CreateGuide)
		r.Get("/available", guideHandler.ListAvailableGuides)

		r.Get("/bookings", guideHandler.ListBookings)
		r.Post("/bookings", guideHandler.CreateBooking)
		r.Put("/bookings/{id}/status", guideHandler.UpdateBookingStatus)

		r.Get("/{id}", guideHandler.GetGuide)
	})
}
