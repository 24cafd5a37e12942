package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// Issue handles POST /api/tickets
func (h *TicketHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req request.IssueTicketRequest
	if !bindJSON(w, r, &req) {
		return
	}

	ticket, err := h.service.Issue(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "issue ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket issued", ticket)
}

// GetByBooking handles GET /api/tickets/booking/{bookingID}
func (h *TicketHandler) GetByBooking(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.GetByBooking(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		handleServiceError(w, h.log, err, "get ticket")
		return
	}
	utils.ResponseSuccess(w, "success", ticket)
}

// CheckIn handles POST /api/tickets/check-in
func (h *TicketHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req request.CheckInRequest
	if !bindJSON(w, r, &req) {
		return
	}

	result, err := h.service.CheckIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "check in")
		return
	}
	utils.ResponseSuccess(w, result.Message, result)
}

// Validate handles GET /api/tickets/validate/{code}. Always 200.
func (h *TicketHandler) Validate(w http.ResponseWriter, r *http.Request) {
	result := h.service.Validate(r.Context(), chi.URLParam(r, "code"))
	utils.ResponseSuccess(w, result.Message, result)
}

// Expire handles PUT /api/tickets/{id}/expire
func (h *TicketHandler) Expire(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.service.Expire(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "expire ticket")
		return
	}
	utils.ResponseSuccess(w, "Ticket expired", ticket)
}

// List handles GET /api/tickets?page=&per_page=
func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	tickets, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list tickets")
		return
	}
	utils.ResponseSuccess(w, "success", tickets)
}

// QRImage handles GET /api/tickets/qr/{code}.png
func (h *TicketHandler) QRImage(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.QRImage(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		handleServiceError(w, h.log, err, "render qr")
		return
	}
	utils.ResponsePNG(w, png)
}
