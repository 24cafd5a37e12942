package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GuideHandler struct {
	service usecase.GuideService
	log     *zap.Logger
}

func NewGuideHandler(service usecase.GuideService, log *zap.Logger) *GuideHandler {
	return &GuideHandler{
		service: service,
		log:     log.With(zap.String("handler", "guide")),
	}
}

func (h *GuideHandler) CreateGuide(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuideRequest
	if !bindJSON(w, r, &req) {
		return
	}

	guide, err := h.service.CreateGuide(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create guide")
		return
	}
	utils.ResponseCreated(w, "Guide created", guide)
}

func (h *GuideHandler) ListGuides(w http.ResponseWriter, r *http.Request) {
	h.listGuides(w, r, false)
}

func (h *GuideHandler) ListAvailableGuides(w http.ResponseWriter, r *http.Request) {
	h.listGuides(w, r, true)
}

func (h *GuideHandler) listGuides(w http.ResponseWriter, r *http.Request, availableOnly bool) {
	guides, err := h.service.ListGuides(r.Context(), availableOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list guides")
		return
	}
	utils.ResponseSuccess(w, "success", guides)
}

func (h *GuideHandler) GetGuide(w http.ResponseWriter, r *http.Request) {
	guide, err := h.service.GetGuide(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get guide")
		return
	}
	utils.ResponseSuccess(w, "success", guide)
}

// CreateBooking handles POST /api/guides/bookings
func (h *GuideHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuideBookingRequest
	if !bindJSON(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book guide")
		return
	}
	utils.ResponseCreated(w, "Guide booked", booking)
}

func (h *GuideHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list guide bookings")
		return
	}
	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBookingStatus handles PUT /api/guides/bookings/{id}/status?status=
func (h *GuideHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	req := request.UpdateGuideBookingStatusRequest{Status: statusParam(r)}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update guide booking status")
		return
	}
	utils.ResponseSuccess(w, "Guide booking status updated", booking)
}
