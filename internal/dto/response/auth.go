package response

import (
	"time"

	"pulau-harapan/internal/data/entity"
)

type AuthResponse struct {
	UserID    string          `json:"user_id"`
	Token     string          `json:"token,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      entity.UserRole `json:"role"`
	RoleLabel string          `json:"role_label"`
}

type UserResponse struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Phone        *string         `json:"phone,omitempty"`
	Role         entity.UserRole `json:"role"`
	RoleLabel    string          `json:"role_label"`
	AssignedArea *string         `json:"assigned_area,omitempty"`
	ProfileImage *string         `json:"profile_image,omitempty"`
	IsActive     bool            `json:"is_active"`
	LastLogin    *time.Time      `json:"last_login,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type RoleResponse struct {
	Role  entity.UserRole `json:"role"`
	Label string          `json:"label"`
	Level int             `json:"level"`
}

type UserStatsResponse struct {
	Total    int64                     `json:"total"`
	Active   int64                     `json:"active"`
	Inactive int64                     `json:"inactive"`
	ByRole   map[entity.UserRole]int64 `json:"by_role"`
}

func UserToResponse(user *entity.User, roleLabel string) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Name:         user.Name,
		Phone:        user.Phone,
		Role:         user.Role,
		RoleLabel:    roleLabel,
		AssignedArea: user.AssignedArea,
		ProfileImage: user.ProfileImage,
		IsActive:     user.IsActive,
		LastLogin:    user.LastLogin,
		CreatedAt:    user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, roleLabel string, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:    user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		RoleLabel: roleLabel,
	}

	if session != nil {
		resp.Token = session.Token.String()
		expires := session.ExpiresAt
		resp.ExpiresAt = &expires
	}

	return resp
}
