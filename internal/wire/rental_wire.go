package wire

import (
	"pulau-harapan/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRental(r chi.Router, rentalHandler *adaptor.RentalHandler) {
	r.Route("/rentals", func(r chi.Router) {
		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", rentalHandler.ListEquipment)
			r.Post("/", rentalHandler.CreateEquipment)
			r.Get("/available", rentalHandler.ListAvailableEquipment)
			r.Get("/{id}", rentalHandler.GetEquipment)
			r.Delete("/{id}", rentalHandler.DeleteEquipment)
		})

		r.Get("/quote", rentalHandler.Quote)
		r.Get("/", rentalHandler.ListRentals)
		r.Post("/", rentalHandler.CreateRental)
		r.Get("/{id}", rentalHandler.GetRental)
		r.Put("/{id}/status", rentalHandler.UpdateStatus)
	})
}
