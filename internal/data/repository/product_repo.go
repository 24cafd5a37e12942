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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindAll lists every product, or only one UMKM's when umkmID is set.
	FindAll(ctx context.Context, umkmID *uuid.UUID) ([]*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProductRepository(db database.Querier, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `id, umkm_id, name, description, price, image_url, created_at, updated_at`

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.UMKMID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, umkm_id, name, description, price, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query, p.ID, p.UMKMID, p.Name, p.Description, p.Price, p.ImageURL, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		mapped := mapInsertError(err)
		if mapped == err {
			r.log.Error("Failed to create product", zap.Error(err), zap.String("umkm_id", p.UMKMID.String()))
		}
		return fmt.Errorf("create product %s: %w", p.Name, mapped)
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return p, nil
}

func (r *productRepository) FindAll(ctx context.Context, umkmID *uuid.UUID) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1::uuid IS NULL OR umkm_id = $1)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, umkmID)
	if err != nil {
		r.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id.String()))
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete product %s: %w", id, ErrNoRowsAffected)
	}
	return nil
}
