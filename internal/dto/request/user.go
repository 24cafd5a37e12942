package request

type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	ProfileImage *string `json:"profile_image,omitempty"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type UpdateRoleRequest struct {
	Role         string  `json:"role" validate:"required"`
	AssignedArea *string `json:"assigned_area,omitempty" validate:"omitempty,max=100"`
}

type UserListRequest struct {
	PaginatedRequest
	Role string
}
