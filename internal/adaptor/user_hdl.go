package adaptor

import (
	"net/http"

	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /api/users?role=&page=&per_page=
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.UserListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		Role: query.Get("role"),
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}
	utils.ResponseSuccess(w, "success", user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUserRequest
	if !bindJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}
	utils.ResponseSuccess(w, "User updated", user)
}

// UpdateRole handles PUT /api/users/{id}/role
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRoleRequest
	if !bindJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateRole(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update role")
		return
	}

	actorID, _ := utils.GetUserIDFromContext(r.Context())
	actorRole, _ := utils.GetRoleFromContext(r.Context())
	h.log.Info("Role changed",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("changed_by", actorID.String()),
		zap.String("changed_by_role", actorRole),
	)
	utils.ResponseSuccess(w, "Role updated", user)
}

func (h *UserHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.ToggleActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "toggle active")
		return
	}
	utils.ResponseSuccess(w, "User status updated", user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}
	utils.ResponseSuccess(w, "User deleted", nil)
}

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "user stats")
		return
	}
	utils.ResponseSuccess(w, "success", stats)
}

// Roles handles GET /api/users/roles
func (h *UserHandler) Roles(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Roles())
}
