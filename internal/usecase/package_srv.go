package usecase

import (
	"context"
	"errors"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PackageService interface {
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	GetPackage(ctx context.Context, packageID string) (*response.PackageResponse, error)
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type packageService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewPackageService(repo *repository.Repository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		log:  log.With(zap.String("service", "package")),
		now:  time.Now,
	}
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	var destinationID *uuid.UUID
	if req.DestinationID != nil {
		id, err := parseID(*req.DestinationID, "destination")
		if err != nil {
			return nil, err
		}
		destinationID = &id
	}

	now := s.now()
	pkg := &entity.Package{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		DestinationID: destinationID,
		Name:          req.Name,
		Price:         req.Price,
		Features:      req.Features,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, notFound("destination")
		}
		return nil, err
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) GetPackage(ctx context.Context, packageID string) (*response.PackageResponse, error) {
	id, err := parseID(packageID, "package")
	if err != nil {
		return nil, err
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, notFound("package")
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.Package.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.PackageResponse, len(packages))
	for i, p := range packages {
		out[i] = response.PackageToResponse(p)
	}
	return out, nil
}

func (s *packageService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := parseID(packageID, "package")
	if err != nil {
		return err
	}
	return writeResult(s.repo.Package.Delete(ctx, id), "package")
}
