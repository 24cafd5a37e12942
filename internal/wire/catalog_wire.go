package wire

import (
	"pulau-harapan/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	destinationHandler *adaptor.DestinationHandler,
	packageHandler *adaptor.PackageHandler,
	umkmHandler *adaptor.UMKMHandler,
) {
	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", destinationHandler.List)
		r.Post("/", destinationHandler.Create)
		r.Get("/{id}", destinationHandler.Get)
		r.Delete("/{id}", destinationHandler.Delete)
	})

	r.Route("/packages", func(r chi.Router) {
		r.Get("/", packageHandler.List)
		r.Post("/", packageHandler.Create)
		r.Get("/{id}", packageHandler.Get)
		r.Delete("/{id}", packageHandler.Delete)
	})

	r.Route("/umkm", func(r chi.Router) {
		r.Get("/", umkmHandler.List)
		r.Post("/", umkmHandler.Create)
		r.Get("/{id}", umkmHandler.Get)
		r.Delete("/{id}", umkmHandler.Delete)
		r.Get("/{id}/products", umkmHandler.ListProducts)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", umkmHandler.ListProducts)
		r.Post("/", umkmHandler.CreateProduct)
		r.Delete("/{id}", umkmHandler.DeleteProduct)
	})
}
