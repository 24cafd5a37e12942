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
	"pulau-harapan/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	packageID, err := parseID(req.PackageID, "package")
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return nil, invalidInput("date must be YYYY-MM-DD")
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, notFound("package")
	}

	visitors := req.NumVisitors
	if visitors < 1 {
		visitors = 1
	}
	total := pkg.Price * float64(visitors)
	if req.TotalPrice != nil {
		total = *req.TotalPrice
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName: req.CustomerName,
		Email:        req.Email,
		PackageID:    &packageID,
		Date:         date,
		NumVisitors:  visitors,
		TotalPrice:   total,
		Status:       entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, notFound("package")
		}
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("package_id", packageID.String()),
		zap.Int("num_visitors", visitors),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("booking")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, utils.CalculateOffset(page, limit))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = response.BookingToResponse(b)
	}
	return response.NewPaginatedResponse(out, page, limit, total), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, status string) (*response.BookingResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}
	next := entity.BookingStatus(status)
	if !next.Valid() {
		return nil, invalidInput("unknown booking status %q", status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("booking")
	}

	if booking.Status != next {
		if !booking.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
		}
		if err := s.repo.Booking.UpdateStatus(ctx, id, next); err != nil {
			return nil, err
		}
		booking.Status = next

		s.log.Info("Booking status changed",
			zap.String("booking_id", id.String()),
			zap.String("status", string(next)),
		)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}
