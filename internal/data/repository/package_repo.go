package repository

import (
	"context"
	"errors"
	"fmt"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPackageRepository(db database.Querier, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `id, destination_id, name, price, features, created_at, updated_at`

func scanPackage(row rowScanner) (*entity.Package, error) {
	var p entity.Package
	if err := row.Scan(&p.ID, &p.DestinationID, &p.Name, &p.Price, &p.Features, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, p *entity.Package) error {
	query := `
		INSERT INTO packages (id, destination_id, name, price, features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query, p.ID, p.DestinationID, p.Name, p.Price, p.Features, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			r.log.Error("Failed to create package", zap.Error(err), zap.String("name", p.Name))
		}
		return fmt.Errorf("create package %s: %w", p.Name, mapped)
	}
	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	p, err := scanPackage(r.db.QueryRow(ctx, `SELECT `+packageColumns+` FROM packages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package", zap.Error(err), zap.String("package_id", id.String()))
		return nil, fmt.Errorf("find package %s: %w", id, err)
	}
	return p, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	rows, err := r.db.Query(ctx, `SELECT `+packageColumns+` FROM packages ORDER BY price`)
	if err != nil {
		r.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var out []*entity.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete package", zap.Error(err), zap.String("package_id", id.String()))
		return fmt.Errorf("delete package %s: %w", id, mapDeleteError(err))
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete package %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
