package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DestinationHandler struct {
	service usecase.DestinationService
	log     *zap.Logger
}

func NewDestinationHandler(service usecase.DestinationService, log *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		service: service,
		log:     log.With(zap.String("handler", "destination")),
	}
}

func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDestinationRequest
	if !bindJSON(w, r, &req) {
		return
	}

	destination, err := h.service.CreateDestination(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create destination")
		return
	}
	utils.ResponseCreated(w, "Destination created", destination)
}

func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.ListDestinations(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list destinations")
		return
	}
	utils.ResponseSuccess(w, "success", destinations)
}

func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	destination, err := h.service.GetDestination(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get destination")
		return
	}
	utils.ResponseSuccess(w, "success", destination)
}

func (h *DestinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDestination(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete destination")
		return
	}
	utils.ResponseSuccess(w, "Destination deleted", nil)
}
