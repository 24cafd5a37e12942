package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context, role *entity.UserRole, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context, role *entity.UserRole) (int64, error)
	CountByRole(ctx context.Context) (map[entity.UserRole]int64, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, username, email, password, name, phone, role, assigned_area,
	profile_image, is_active, last_login, created_at, updated_at`

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Phone,
		&user.Role,
		&user.AssignedArea,
		&user.ProfileImage,
		&user.IsActive,
		&user.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. Username and email collisions surface as
// ErrDuplicateUsername / ErrDuplicateEmail.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, name, phone, role, assigned_area,
		                   profile_image, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.Role,
		user.AssignedArea,
		user.ProfileImage,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			ur.log.Error("Failed to create user",
				zap.Error(err),
				zap.String("username", user.Username),
			)
		}
		return fmt.Errorf("create user %s: %w", user.Username, mapped)
	}

	return nil
}

func (ur *userRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	user, err := scanUser(ur.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user", zap.Error(err), zap.String("where", where))
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return ur.findOne(ctx, "id = $1", id)
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return ur.findOne(ctx, "email = $1", email)
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return ur.findOne(ctx, "username = $1", username)
}

// FindAll lists users newest first, optionally restricted to one role.
func (ur *userRepository) FindAll(ctx context.Context, role *entity.UserRole, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::text IS NULL OR role = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := ur.db.Query(ctx, query, roleArg(role), limit, offset)
	if err != nil {
		ur.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context, role *entity.UserRole) (int64, error) {
	var total int64
	err := ur.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE ($1::text IS NULL OR role = $1)`, roleArg(role),
	).Scan(&total)
	if err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (ur *userRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := ur.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active`).Scan(&total); err != nil {
		ur.log.Error("Failed to count active users", zap.Error(err))
		return 0, fmt.Errorf("count active users: %w", err)
	}
	return total, nil
}

func (ur *userRepository) CountByRole(ctx context.Context) (map[entity.UserRole]int64, error) {
	rows, err := ur.db.Query(ctx, `SELECT role, COUNT(*) FROM users GROUP BY role`)
	if err != nil {
		ur.log.Error("Failed to count users by role", zap.Error(err))
		return nil, fmt.Errorf("count users by role: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.UserRole]int64)
	for rows.Next() {
		var role entity.UserRole
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		counts[role] = n
	}
	return counts, rows.Err()
}

// Update writes every mutable column; the caller loads, mutates and saves.
func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, password = $3, name = $4, phone = $5, role = $6,
		    assigned_area = $7, profile_image = $8, is_active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Phone,
		user.Role,
		user.AssignedArea,
		user.ProfileImage,
		user.IsActive,
		user.UpdatedAt,
	)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			ur.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", user.ID.String()))
		}
		return fmt.Errorf("update user %s: %w", user.ID, mapped)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("update user %s: %w", user.ID, ErrNoRowsAffected)
	}

	return nil
}

func (ur *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := ur.db.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at)
	if err != nil {
		ur.log.Error("Failed to update last login", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("update last login %s: %w", id, err)
	}
	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := ur.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("delete user %s: %w", id, mapDeleteError(err))
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete user %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}

func roleArg(role *entity.UserRole) any {
	if role == nil {
		return nil
	}
	return string(*role)
}
