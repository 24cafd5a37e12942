package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// CreateEquipment handles POST /api/rentals/equipment
func (h *RentalHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEquipmentRequest
	if !bindJSON(w, r, &req) {
		return
	}

	equipment, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create equipment")
		return
	}
	utils.ResponseCreated(w, "Equipment created", equipment)
}

func (h *RentalHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	h.listEquipment(w, r, false)
}

// ListAvailableEquipment handles GET /api/rentals/equipment/available
func (h *RentalHandler) ListAvailableEquipment(w http.ResponseWriter, r *http.Request) {
	h.listEquipment(w, r, true)
}

func (h *RentalHandler) listEquipment(w http.ResponseWriter, r *http.Request, availableOnly bool) {
	items, err := h.service.ListEquipment(r.Context(), availableOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list equipment")
		return
	}
	utils.ResponseSuccess(w, "success", items)
}

func (h *RentalHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.service.GetEquipment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get equipment")
		return
	}
	utils.ResponseSuccess(w, "success", equipment)
}

func (h *RentalHandler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEquipment(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete equipment")
		return
	}
	utils.ResponseSuccess(w, "Equipment deleted", nil)
}

// Quote handles GET /api/rentals/quote?equipment_id=&rental_date=&return_date=&quantity=
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.QuoteRequest{
		EquipmentID: query.Get("equipment_id"),
		RentalDate:  query.Get("rental_date"),
		ReturnDate:  query.Get("return_date"),
		Quantity:    utils.ParseInt(query.Get("quantity"), 1),
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	quote, err := h.service.Quote(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote rental")
		return
	}
	utils.ResponseSuccess(w, "success", quote)
}

// CreateRental handles POST /api/rentals
func (h *RentalHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRentalRequest
	if !bindJSON(w, r, &req) {
		return
	}

	rental, err := h.service.CreateRental(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rental")
		return
	}
	utils.ResponseCreated(w, "Rental created", rental)
}

func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.ListRentals(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list rentals")
		return
	}
	utils.ResponseSuccess(w, "success", rentals)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	rental, err := h.service.GetRental(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get rental")
		return
	}
	utils.ResponseSuccess(w, "success", rental)
}

// UpdateStatus handles PUT /api/rentals/{id}/status?status=
func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	req := request.UpdateRentalStatusRequest{Status: statusParam(r)}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rental, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		handleServiceError(w, h.log, err, "update rental status")
		return
	}
	utils.ResponseSuccess(w, "Rental status updated", rental)
}
