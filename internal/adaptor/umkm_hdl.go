package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UMKMHandler struct {
	service usecase.UMKMService
	log     *zap.Logger
}

func NewUMKMHandler(service usecase.UMKMService, log *zap.Logger) *UMKMHandler {
	return &UMKMHandler{
		service: service,
		log:     log.With(zap.String("handler", "umkm")),
	}
}

func (h *UMKMHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUMKMRequest
	if !bindJSON(w, r, &req) {
		return
	}

	umkm, err := h.service.CreateUMKM(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create umkm")
		return
	}
	utils.ResponseCreated(w, "UMKM created", umkm)
}

func (h *UMKMHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListUMKM(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list umkm")
		return
	}
	utils.ResponseSuccess(w, "success", items)
}

func (h *UMKMHandler) Get(w http.ResponseWriter, r *http.Request) {
	umkm, err := h.service.GetUMKM(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get umkm")
		return
	}
	utils.ResponseSuccess(w, "success", umkm)
}

func (h *UMKMHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUMKM(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete umkm")
		return
	}
	utils.ResponseSuccess(w, "UMKM deleted", nil)
}

// CreateProduct handles POST /api/products
func (h *UMKMHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if !bindJSON(w, r, &req) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}
	utils.ResponseCreated(w, "Product created", product)
}

// ListProducts handles GET /api/products and GET /api/umkm/{id}/products
func (h *UMKMHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	umkmID := chi.URLParam(r, "id")
	if umkmID == "" {
		umkmID = r.URL.Query().Get("umkm_id")
	}

	products, err := h.service.ListProducts(r.Context(), umkmID)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}
	utils.ResponseSuccess(w, "success", products)
}

func (h *UMKMHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}
	utils.ResponseSuccess(w, "Product deleted", nil)
}
