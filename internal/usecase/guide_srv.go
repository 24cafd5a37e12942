package usecase

import (
	"context"
	"fmt"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuideService interface {
	CreateGuide(ctx context.Context, req *request.CreateGuideRequest) (*response.GuideResponse, error)
	GetGuide(ctx context.Context, guideID string) (*response.GuideResponse, error)
	ListGuides(ctx context.Context, availableOnly bool) ([]response.GuideResponse, error)

	CreateBooking(ctx context.Context, req *request.CreateGuideBookingRequest) (*response.GuideBookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, status string) (*response.GuideBookingResponse, error)
	ListBookings(ctx context.Context) ([]response.GuideBookingResponse, error)
}

type guideService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewGuideService(repo *repository.Repository, log *zap.Logger) GuideService {
	return &guideService{
		repo: repo,
		log:  log.With(zap.String("service", "guide")),
		now:  time.Now,
	}
}

func (s *guideService) CreateGuide(ctx context.Context, req *request.CreateGuideRequest) (*response.GuideResponse, error) {
	now := s.now()
	guide := &entity.TourGuide{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Specialty:   req.Specialty,
		Languages:   req.Languages,
		PricePerDay: req.PricePerDay,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}

	if err := s.repo.Guide.Create(ctx, guide); err != nil {
		return nil, err
	}

	resp := response.GuideToResponse(guide)
	return &resp, nil
}

func (s *guideService) GetGuide(ctx context.Context, guideID string) (*response.GuideResponse, error) {
	id, err := parseID(guideID, "guide")
	if err != nil {
		return nil, err
	}

	guide, err := s.repo.Guide.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, notFound("guide")
	}

	resp := response.GuideToResponse(guide)
	return &resp, nil
}

func (s *guideService) ListGuides(ctx context.Context, availableOnly bool) ([]response.GuideResponse, error) {
	guides, err := s.repo.Guide.FindAll(ctx, availableOnly)
	if err != nil {
		return nil, err
	}

	out := make([]response.GuideResponse, len(guides))
	for i, g := range guides {
		out[i] = response.GuideToResponse(g)
	}
	return out, nil
}

// CreateBooking prices the booking from the guide's current daily rate. The
// guide row is locked so two overlapping bookings cannot both pass the check.
func (s *guideService) CreateBooking(ctx context.Context, req *request.CreateGuideBookingRequest) (*response.GuideBookingResponse, error) {
	guideID, err := parseID(req.GuideID, "guide")
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(entity.DateLayout, req.BookingDate)
	if err != nil {
		return nil, invalidInput("booking_date must be YYYY-MM-DD")
	}
	duration := req.DurationDays
	if duration == 0 {
		duration = 1
	}
	if duration < 1 {
		return nil, invalidInput("duration_days must be at least 1")
	}

	var booking *entity.GuideBooking

	err = s.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		guide, err := tx.Guide.FindByIDForUpdate(ctx, guideID)
		if err != nil {
			return err
		}
		if guide == nil {
			return notFound("guide")
		}

		now := s.now()
		booking = &entity.GuideBooking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			GuideID:       guideID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			BookingDate:   date,
			DurationDays:  duration,
			Notes:         req.Notes,
			TotalPrice:    guide.PricePerDay * float64(duration),
			Status:        entity.GuideBookingStatusPending,
			GuideName:     guide.Name,
		}

		overlapping, err := tx.GuideBooking.CountOverlapping(ctx, guideID, date, booking.EndDate())
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrGuideUnavailable
		}

		return tx.GuideBooking.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Guide booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("guide_id", guideID.String()),
		zap.Int("duration_days", duration),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.GuideBookingToResponse(booking)
	return &resp, nil
}

func (s *guideService) UpdateStatus(ctx context.Context, bookingID string, status string) (*response.GuideBookingResponse, error) {
	id, err := parseID(bookingID, "guide booking")
	if err != nil {
		return nil, err
	}
	next := entity.GuideBookingStatus(status)
	if !next.Valid() {
		return nil, invalidInput("unknown guide booking status %q", status)
	}

	booking, err := s.repo.GuideBooking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("guide booking")
	}

	if booking.Status != next {
		if !booking.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
		}
		if err := s.repo.GuideBooking.UpdateStatus(ctx, id, next); err != nil {
			return nil, err
		}
		booking.Status = next
	}

	resp := response.GuideBookingToResponse(booking)
	return &resp, nil
}

func (s *guideService) ListBookings(ctx context.Context) ([]response.GuideBookingResponse, error) {
	bookings, err := s.repo.GuideBooking.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.GuideBookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.GuideBookingToResponse(b)
	}
	return out, nil
}
