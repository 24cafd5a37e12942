package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

func (h *PackageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if !bindJSON(w, r, &req) {
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}
	utils.ResponseCreated(w, "Package created", pkg)
}

func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}
	utils.ResponseSuccess(w, "success", packages)
}

func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get package")
		return
	}
	utils.ResponseSuccess(w, "success", pkg)
}

func (h *PackageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}
	utils.ResponseSuccess(w, "Package deleted", nil)
}
