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

type UMKMService interface {
	CreateUMKM(ctx context.Context, req *request.CreateUMKMRequest) (*response.UMKMResponse, error)
	GetUMKM(ctx context.Context, umkmID string) (*response.UMKMResponse, error)
	ListUMKM(ctx context.Context) ([]response.UMKMResponse, error)
	DeleteUMKM(ctx context.Context, umkmID string) error

	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	// ListProducts lists all products, or one UMKM's when umkmID is non-empty.
	ListProducts(ctx context.Context, umkmID string) ([]response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type umkmService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewUMKMService(repo *repository.Repository, log *zap.Logger) UMKMService {
	return &umkmService{
		repo: repo,
		log:  log.With(zap.String("service", "umkm")),
		now:  time.Now,
	}
}

func (s *umkmService) CreateUMKM(ctx context.Context, req *request.CreateUMKMRequest) (*response.UMKMResponse, error) {
	var ownerID *uuid.UUID
	if req.OwnerID != nil {
		id, err := parseID(*req.OwnerID, "owner")
		if err != nil {
			return nil, err
		}
		ownerID = &id
	}

	now := s.now()
	umkm := &entity.UMKM{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	}

	if err := s.repo.UMKM.Create(ctx, umkm); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, notFound("owner")
		}
		return nil, err
	}

	resp := response.UMKMToResponse(umkm)
	return &resp, nil
}

func (s *umkmService) GetUMKM(ctx context.Context, umkmID string) (*response.UMKMResponse, error) {
	id, err := parseID(umkmID, "umkm")
	if err != nil {
		return nil, err
	}

	umkm, err := s.repo.UMKM.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if umkm == nil {
		return nil, notFound("umkm")
	}

	resp := response.UMKMToResponse(umkm)
	return &resp, nil
}

func (s *umkmService) ListUMKM(ctx context.Context) ([]response.UMKMResponse, error) {
	items, err := s.repo.UMKM.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.UMKMResponse, len(items))
	for i, u := range items {
		out[i] = response.UMKMToResponse(u)
	}
	return out, nil
}

func (s *umkmService) DeleteUMKM(ctx context.Context, umkmID string) error {
	id, err := parseID(umkmID, "umkm")
	if err != nil {
		return err
	}
	return writeResult(s.repo.UMKM.Delete(ctx, id), "umkm")
}

func (s *umkmService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	umkmID, err := parseID(req.UMKMID, "umkm")
	if err != nil {
		return nil, err
	}

	umkm, err := s.repo.UMKM.FindByID(ctx, umkmID)
	if err != nil {
		return nil, err
	}
	if umkm == nil {
		return nil, notFound("umkm")
	}

	now := s.now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UMKMID:      umkmID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, notFound("umkm")
		}
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *umkmService) ListProducts(ctx context.Context, umkmID string) ([]response.ProductResponse, error) {
	var filter *uuid.UUID
	if umkmID != "" {
		id, err := parseID(umkmID, "umkm")
		if err != nil {
			return nil, err
		}
		filter = &id
	}

	products, err := s.repo.Product.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]response.ProductResponse, len(products))
	for i, p := range products {
		out[i] = response.ProductToResponse(p)
	}
	return out, nil
}

func (s *umkmService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := parseID(productID, "product")
	if err != nil {
		return err
	}
	return writeResult(s.repo.Product.Delete(ctx, id), "product")
}
