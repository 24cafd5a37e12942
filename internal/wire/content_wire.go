package wire

import (
	"pulau-harapan/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireContent(r chi.Router, contentHandler *adaptor.ContentHandler, feedbackHandler *adaptor.FeedbackHandler) {
	r.Route("/contents", func(r chi.Router) {
		r.Get("/", contentHandler.List)
		r.Post("/", contentHandler.Create)
		r.Get("/{id}", contentHandler.Get)
		r.Put("/{id}", contentHandler.Update)
		r.Delete("/{id}", contentHandler.Delete)
	})

	r.Route("/feedback", func(r chi.Router) {
		r.Get("/", feedbackHandler.List)
		r.Post("/", feedbackHandler.Create)
		r.Get("/emergency", feedbackHandler.ListEmergencies)
		r.Put("/{id}", feedbackHandler.Update)
	})
}
