package adaptor

import (
	"net/http"
	"strconv"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateContentRequest
	if !bindJSON(w, r, &req) {
		return
	}

	content, err := h.service.CreateContent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create content")
		return
	}
	utils.ResponseCreated(w, "Content created", content)
}

// List handles GET /api/contents?published=true
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	publishedOnly, _ := strconv.ParseBool(r.URL.Query().Get("published"))

	contents, err := h.service.ListContents(r.Context(), publishedOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list contents")
		return
	}
	utils.ResponseSuccess(w, "success", contents)
}

func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	content, err := h.service.GetContent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get content")
		return
	}
	utils.ResponseSuccess(w, "success", content)
}

func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateContentRequest
	if !bindJSON(w, r, &req) {
		return
	}

	content, err := h.service.UpdateContent(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update content")
		return
	}
	utils.ResponseSuccess(w, "Content updated", content)
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteContent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete content")
		return
	}
	utils.ResponseSuccess(w, "Content deleted", nil)
}
