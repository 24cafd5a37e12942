package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFeedbackRequest
	if !bindJSON(w, r, &req) {
		return
	}

	feedback, err := h.service.CreateFeedback(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create feedback")
		return
	}
	utils.ResponseCreated(w, "Feedback submitted", feedback)
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFeedback(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list feedback")
		return
	}
	utils.ResponseSuccess(w, "success", items)
}

// ListEmergencies handles GET /api/feedback/emergency
func (h *FeedbackHandler) ListEmergencies(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListEmergencies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list emergencies")
		return
	}
	utils.ResponseSuccess(w, "success", items)
}

func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateFeedbackRequest
	if !bindJSON(w, r, &req) {
		return
	}

	feedback, err := h.service.UpdateFeedback(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update feedback")
		return
	}
	utils.ResponseSuccess(w, "Feedback updated", feedback)
}
