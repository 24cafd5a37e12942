package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DestinationService interface {
	CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error)
	GetDestination(ctx context.Context, destinationID string) (*response.DestinationResponse, error)
	ListDestinations(ctx context.Context) ([]response.DestinationResponse, error)
	DeleteDestination(ctx context.Context, destinationID string) error
}

type destinationService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewDestinationService(repo *repository.Repository, log *zap.Logger) DestinationService {
	return &destinationService{
		repo: repo,
		log:  log.With(zap.String("service", "destination")),
		now:  time.Now,
	}
}

func (s *destinationService) CreateDestination(ctx context.Context, req *request.CreateDestinationRequest) (*response.DestinationResponse, error) {
	now := s.now()
	destination := &entity.Destination{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		ImageURL:    req.ImageURL,
		Capacity:    req.Capacity,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := s.repo.Destination.Create(ctx, destination); err != nil {
		return nil, err
	}

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *destinationService) GetDestination(ctx context.Context, destinationID string) (*response.DestinationResponse, error) {
	id, err := parseID(destinationID, "destination")
	if err != nil {
		return nil, err
	}

	destination, err := s.repo.Destination.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, notFound("destination")
	}

	resp := response.DestinationToResponse(destination)
	return &resp, nil
}

func (s *destinationService) ListDestinations(ctx context.Context) ([]response.DestinationResponse, error) {
	destinations, err := s.repo.Destination.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.DestinationResponse, len(destinations))
	for i, d := range destinations {
		out[i] = response.DestinationToResponse(d)
	}
	return out, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, destinationID string) error {
	id, err := parseID(destinationID, "destination")
	if err != nil {
		return err
	}
	return writeResult(s.repo.Destination.Delete(ctx, id), "destination")
}

// writeResult maps repository write outcomes onto service errors.
func writeResult(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNoRowsAffected):
		return notFound(what)
	case errors.Is(err, repository.ErrReferenced):
		return fmt.Errorf("%w: %s is still referenced", ErrConflict, what)
	}
	return err
}
