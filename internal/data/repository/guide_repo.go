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

type GuideRepository interface {
	Create(ctx context.Context, guide *entity.TourGuide) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourGuide, error)
	// FindByIDForUpdate locks the guide row, serialising bookings per guide.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.TourGuide, error)
	FindAll(ctx context.Context, availableOnly bool) ([]*entity.TourGuide, error)
}

type guideRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGuideRepository(db database.Querier, log *zap.Logger) GuideRepository {
	return &guideRepository{
		db:  db,
		log: log.With(zap.String("repository", "guide")),
	}
}

const guideColumns = `id, name, description, specialty, languages, price_per_day, phone, image_url,
	rating, is_available, created_at, updated_at`

func scanGuide(row rowScanner) (*entity.TourGuide, error) {
	var g entity.TourGuide
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Specialty, &g.Languages, &g.PricePerDay,
		&g.Phone, &g.ImageURL, &g.Rating, &g.IsAvailable, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guideRepository) Create(ctx context.Context, g *entity.TourGuide) error {
	query := `
		INSERT INTO tour_guides (id, name, description, specialty, languages, price_per_day, phone,
		                         image_url, rating, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query, g.ID, g.Name, g.Description, g.Specialty, g.Languages,
		g.PricePerDay, g.Phone, g.ImageURL, g.Rating, g.IsAvailable, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create guide", zap.Error(err), zap.String("name", g.Name))
		return fmt.Errorf("create guide %s: %w", g.Name, err)
	}
	return nil
}

func (r *guideRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.TourGuide, error) {
	g, err := scanGuide(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guide", zap.Error(err), zap.String("guide_id", id.String()))
		return nil, fmt.Errorf("find guide %s: %w", id, err)
	}
	return g, nil
}

func (r *guideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourGuide, error) {
	return r.findOne(ctx, `SELECT `+guideColumns+` FROM tour_guides WHERE id = $1`, id)
}

func (r *guideRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.TourGuide, error) {
	return r.findOne(ctx, `SELECT `+guideColumns+` FROM tour_guides WHERE id = $1 FOR UPDATE`, id)
}

func (r *guideRepository) FindAll(ctx context.Context, availableOnly bool) ([]*entity.TourGuide, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+guideColumns+` FROM tour_guides WHERE (NOT $1 OR is_available) ORDER BY rating DESC, name`,
		availableOnly)
	if err != nil {
		r.log.Error("Failed to list guides", zap.Error(err))
		return nil, fmt.Errorf("list guides: %w", err)
	}
	defer rows.Close()

	var out []*entity.TourGuide
	for rows.Next() {
		g, err := scanGuide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guide: %w", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
