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

type RentalService interface {
	CreateEquipment(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error)
	GetEquipment(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error)
	ListEquipment(ctx context.Context, availableOnly bool) ([]response.EquipmentResponse, error)
	DeleteEquipment(ctx context.Context, equipmentID string) error

	Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error)
	CreateRental(ctx context.Context, req *request.CreateRentalRequest) (*response.RentalResponse, error)
	UpdateStatus(ctx context.Context, rentalID string, status string) (*response.RentalResponse, error)
	GetRental(ctx context.Context, rentalID string) (*response.RentalResponse, error)
	ListRentals(ctx context.Context) ([]response.RentalResponse, error)
}

type rentalService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewRentalService(repo *repository.Repository, log *zap.Logger) RentalService {
	return &rentalService{
		repo: repo,
		log:  log.With(zap.String("service", "rental")),
		now:  time.Now,
	}
}

// RentalDays counts whole days between two YYYY-MM-DD dates, at least one.
// Unparseable input also counts as one day.
func RentalDays(rentalDate, returnDate string) int {
	start, err := time.Parse(entity.DateLayout, rentalDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(entity.DateLayout, returnDate)
	if err != nil {
		return 1
	}
	return daysBetween(start, end)
}

func daysBetween(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// RentalPrice is days × pricePerDay × quantity.
func RentalPrice(days int, pricePerDay float64, quantity int) float64 {
	return float64(days) * pricePerDay * float64(quantity)
}

func (s *rentalService) CreateEquipment(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error) {
	if req.Stock < 0 {
		return nil, invalidInput("stock must not be negative")
	}

	now := s.now()
	equipment := &entity.CampingEquipment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PricePerDay: req.PricePerDay,
		Stock:       req.Stock,
		Available:   req.Stock,
		IsAvailable: true,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Equipment.Create(ctx, equipment); err != nil {
		return nil, err
	}

	s.log.Info("Equipment created",
		zap.String("equipment_id", equipment.ID.String()),
		zap.Int("stock", equipment.Stock),
	)

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *rentalService) findEquipment(ctx context.Context, repo repository.EquipmentRepository, id uuid.UUID) (*entity.CampingEquipment, error) {
	equipment, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, notFound("equipment")
	}
	return equipment, nil
}

func (s *rentalService) GetEquipment(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error) {
	id, err := parseID(equipmentID, "equipment")
	if err != nil {
		return nil, err
	}

	equipment, err := s.findEquipment(ctx, s.repo.Equipment, id)
	if err != nil {
		return nil, err
	}

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *rentalService) ListEquipment(ctx context.Context, availableOnly bool) ([]response.EquipmentResponse, error) {
	items, err := s.repo.Equipment.FindAll(ctx, availableOnly)
	if err != nil {
		return nil, err
	}

	out := make([]response.EquipmentResponse, len(items))
	for i, e := range items {
		out[i] = response.EquipmentToResponse(e)
	}
	return out, nil
}

func (s *rentalService) DeleteEquipment(ctx context.Context, equipmentID string) error {
	id, err := parseID(equipmentID, "equipment")
	if err != nil {
		return err
	}

	err = s.repo.Equipment.Delete(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNoRowsAffected):
		return notFound("equipment")
	case errors.Is(err, repository.ErrReferenced):
		return fmt.Errorf("%w: equipment has rentals", ErrConflict)
	case err != nil:
		return err
	}

	s.log.Info("Equipment deleted", zap.String("equipment_id", id.String()))
	return nil
}

func (s *rentalService) Quote(ctx context.Context, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	id, err := parseID(req.EquipmentID, "equipment")
	if err != nil {
		return nil, err
	}
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	equipment, err := s.findEquipment(ctx, s.repo.Equipment, id)
	if err != nil {
		return nil, err
	}

	days := RentalDays(req.RentalDate, req.ReturnDate)
	return &response.QuoteResponse{
		EquipmentID: equipment.ID.String(),
		Days:        days,
		PricePerDay: equipment.PricePerDay,
		Quantity:    quantity,
		TotalPrice:  RentalPrice(days, equipment.PricePerDay, quantity),
	}, nil
}

// CreateRental reserves stock and records the rental atomically. The reserve
// is a guarded decrement, so concurrent rentals cannot oversell.
func (s *rentalService) CreateRental(ctx context.Context, req *request.CreateRentalRequest) (*response.RentalResponse, error) {
	equipmentID, err := parseID(req.EquipmentID, "equipment")
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, invalidInput("quantity must be at least 1")
	}

	rentalDate, err := time.Parse(entity.DateLayout, req.RentalDate)
	if err != nil {
		return nil, invalidInput("rental_date must be YYYY-MM-DD")
	}
	returnDate, err := time.Parse(entity.DateLayout, req.ReturnDate)
	if err != nil {
		return nil, invalidInput("return_date must be YYYY-MM-DD")
	}
	if returnDate.Before(rentalDate) {
		return nil, invalidInput("return_date is before rental_date")
	}

	var rental *entity.EquipmentRental

	err = s.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		equipment, err := s.findEquipment(ctx, tx.Equipment, equipmentID)
		if err != nil {
			return err
		}

		if err := tx.Equipment.Reserve(ctx, equipmentID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				return ErrInsufficientStock
			}
			return err
		}

		now := s.now()
		days := daysBetween(rentalDate, returnDate)
		rental = &entity.EquipmentRental{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			EquipmentID:   equipmentID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			RentalDate:    rentalDate,
			ReturnDate:    returnDate,
			Quantity:      req.Quantity,
			TotalPrice:    RentalPrice(days, equipment.PricePerDay, req.Quantity),
			Status:        entity.RentalStatusPending,
			EquipmentName: equipment.Name,
		}
		return tx.Rental.Create(ctx, rental)
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			s.log.Warn("Rental rejected: insufficient stock",
				zap.String("equipment_id", equipmentID.String()),
				zap.Int("quantity", req.Quantity),
			)
		}
		return nil, err
	}

	s.log.Info("Rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("equipment_id", equipmentID.String()),
		zap.Int("quantity", rental.Quantity),
		zap.Float64("total_price", rental.TotalPrice),
	)

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

// UpdateStatus moves a rental forward. Entering returned or cancelled hands
// the units back exactly once, guarded by the rental's stock_released flag.
func (s *rentalService) UpdateStatus(ctx context.Context, rentalID string, status string) (*response.RentalResponse, error) {
	id, err := parseID(rentalID, "rental")
	if err != nil {
		return nil, err
	}
	next := entity.RentalStatus(status)
	if !next.Valid() {
		return nil, invalidInput("unknown rental status %q", status)
	}

	var rental *entity.EquipmentRental

	err = s.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		current, err := tx.Rental.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound("rental")
		}
		rental = current

		if current.Status == next {
			return nil
		}
		if !current.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}

		if err := tx.Rental.UpdateStatus(ctx, id, next); err != nil {
			return err
		}
		rental.Status = next

		if !next.ReleasesStock() {
			return nil
		}

		released, err := tx.Rental.MarkStockReleased(ctx, id)
		if err != nil {
			return err
		}
		if !released {
			return nil
		}
		rental.StockReleased = true

		if err := tx.Equipment.Release(ctx, current.EquipmentID, current.Quantity); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				s.log.Warn("Stock release skipped: equipment missing",
					zap.String("equipment_id", current.EquipmentID.String()))
				return nil
			}
			return err
		}

		s.log.Info("Stock released",
			zap.String("rental_id", id.String()),
			zap.String("equipment_id", current.EquipmentID.String()),
			zap.Int("quantity", current.Quantity),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID string) (*response.RentalResponse, error) {
	id, err := parseID(rentalID, "rental")
	if err != nil {
		return nil, err
	}

	rental, err := s.repo.Rental.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, notFound("rental")
	}

	resp := response.RentalToResponse(rental)
	return &resp, nil
}

func (s *rentalService) ListRentals(ctx context.Context) ([]response.RentalResponse, error) {
	rentals, err := s.repo.Rental.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.RentalResponse, len(rentals))
	for i, r := range rentals {
		out[i] = response.RentalToResponse(r)
	}
	return out, nil
}
