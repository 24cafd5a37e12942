package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"
	"pulau-harapan/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	UpdateRole(ctx context.Context, userID string, req *request.UpdateRoleRequest) (*response.UserResponse, error)
	ToggleActive(ctx context.Context, userID string) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	Stats(ctx context.Context) (*response.UserStatsResponse, error)
	Roles() []response.RoleResponse
}

type userService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewUserService(repo *repository.Repository, config *utils.Config, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "user")),
		now:    time.Now,
	}
}

func (us *userService) load(ctx context.Context, userID string) (*entity.User, error) {
	id, err := parseID(userID, "user")
	if err != nil {
		return nil, err
	}

	user, err := us.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound("user")
	}
	return user, nil
}

func (us *userService) toResponse(user *entity.User) *response.UserResponse {
	resp := response.UserToResponse(user, RoleLabel(user.Role))
	return &resp
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := us.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return us.toResponse(user), nil
}

func (us *userService) GetAllUsers(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	var role *entity.UserRole
	if req.Role != "" {
		r := entity.UserRole(req.Role)
		if _, ok := LookupRole(r); !ok {
			return nil, ErrInvalidRole
		}
		role = &r
	}

	limit := req.Limit()
	page := req.Page
	if page < 1 {
		page = 1
	}

	users, err := us.repo.User.FindAll(ctx, role, limit, utils.CalculateOffset(page, limit))
	if err != nil {
		return nil, err
	}

	total, err := us.repo.User.CountAll(ctx, role)
	if err != nil {
		return nil, err
	}

	out := make([]response.UserResponse, len(users))
	for i, user := range users {
		out[i] = response.UserToResponse(user, RoleLabel(user.Role))
	}

	return response.NewPaginatedResponse(out, page, limit, total), nil
}

func (us *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	user, err := us.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password, us.config.Security.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashed
	}
	user.UpdatedAt = us.now()

	if err := us.save(ctx, user); err != nil {
		return nil, err
	}

	return us.toResponse(user), nil
}

func (us *userService) UpdateRole(ctx context.Context, userID string, req *request.UpdateRoleRequest) (*response.UserResponse, error) {
	role := entity.UserRole(req.Role)
	if _, ok := LookupRole(role); !ok {
		return nil, ErrInvalidRole
	}

	user, err := us.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	previous := user.Role
	user.Role = role
	if req.AssignedArea != nil {
		user.AssignedArea = req.AssignedArea
	}
	user.UpdatedAt = us.now()

	if err := us.save(ctx, user); err != nil {
		return nil, err
	}

	us.log.Info("User role changed",
		zap.String("user_id", user.ID.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(role)),
	)

	return us.toResponse(user), nil
}

// ToggleActive flips is_active; deactivating also revokes open sessions.
func (us *userService) ToggleActive(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := us.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	user.UpdatedAt = us.now()

	err = us.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Update(ctx, user); err != nil {
			return err
		}
		if !user.IsActive {
			return tx.Session.RevokeAllUserSessions(ctx, user.ID)
		}
		return nil
	})
	if err != nil {
		return nil, us.mapWriteError(err)
	}

	us.log.Info("User active flag toggled",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_active", user.IsActive),
	)

	return us.toResponse(user), nil
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := parseID(userID, "user")
	if err != nil {
		return err
	}

	if err := us.repo.User.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return notFound("user")
		}
		return err
	}

	us.log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (us *userService) Stats(ctx context.Context) (*response.UserStatsResponse, error) {
	total, err := us.repo.User.CountAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	active, err := us.repo.User.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	byRole, err := us.repo.User.CountByRole(ctx)
	if err != nil {
		return nil, err
	}

	return &response.UserStatsResponse{
		Total:    total,
		Active:   active,
		Inactive: total - active,
		ByRole:   byRole,
	}, nil
}

func (us *userService) Roles() []response.RoleResponse {
	return Roles()
}

func (us *userService) save(ctx context.Context, user *entity.User) error {
	if err := us.repo.User.Update(ctx, user); err != nil {
		return us.mapWriteError(err)
	}
	return nil
}

func (us *userService) mapWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return ErrDuplicateEmail
	case errors.Is(err, repository.ErrNoRowsAffected):
		return notFound("user")
	}
	return err
}

