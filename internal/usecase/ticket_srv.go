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
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrImageSize = 256

type TicketService interface {
	Issue(ctx context.Context, req *request.IssueTicketRequest) (*response.TicketResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (*response.TicketResponse, error)
	CheckIn(ctx context.Context, req *request.CheckInRequest) (*response.CheckInResponse, error)
	Validate(ctx context.Context, qrCode string) *response.ValidateTicketResponse
	Expire(ctx context.Context, ticketID string) (*response.TicketResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
	QRImage(ctx context.Context, qrCode string) ([]byte, error)
}

type ticketService struct {
	repo     *repository.Repository
	prefix   string
	attempts int
	log      *zap.Logger
	now      func() time.Time
	newCode  func(prefix string, bookingID uuid.UUID) string
}

func NewTicketService(repo *repository.Repository, config *utils.Config, log *zap.Logger) TicketService {
	attempts := config.Ticket.IssueAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &ticketService{
		repo:     repo,
		prefix:   config.Ticket.QRPrefix,
		attempts: attempts,
		log:      log.With(zap.String("service", "ticket")),
		now:      time.Now,
		newCode:  utils.GenerateQRCode,
	}
}

// Issue returns the booking's ticket, creating it on first call. A QR code
// collision is retried with a fresh suffix.
func (s *ticketService) Issue(ctx context.Context, req *request.IssueTicketRequest) (*response.TicketResponse, error) {
	bookingID, err := parseID(req.BookingID, "booking")
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("booking")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, invalidInput("booking %s is cancelled", bookingID)
	}

	existing, err := s.repo.Ticket.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		resp := response.TicketToResponse(existing)
		return &resp, nil
	}

	for attempt := 1; attempt <= s.attempts; attempt++ {
		now := s.now()
		ticket := &entity.Ticket{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			BookingID: bookingID,
			QRCode:    s.newCode(s.prefix, bookingID),
			Status:    entity.TicketStatusValid,
		}

		err := s.repo.Ticket.Create(ctx, ticket)
		switch {
		case err == nil:
			s.log.Info("Ticket issued",
				zap.String("ticket_id", ticket.ID.String()),
				zap.String("booking_id", bookingID.String()),
				zap.Int("attempt", attempt),
			)
			resp := response.TicketToResponse(ticket)
			return &resp, nil

		case errors.Is(err, repository.ErrDuplicateQRCode):
			s.log.Warn("QR code collision, retrying",
				zap.String("booking_id", bookingID.String()),
				zap.Int("attempt", attempt),
			)
			continue

		case errors.Is(err, repository.ErrDuplicateBooking):
			// A concurrent Issue for the same booking won.
			winner, findErr := s.repo.Ticket.FindByBookingID(ctx, bookingID)
			if findErr != nil {
				return nil, findErr
			}
			if winner == nil {
				return nil, ErrDuplicateTicket
			}
			resp := response.TicketToResponse(winner)
			return &resp, nil

		default:
			return nil, err
		}
	}

	s.log.Error("QR code attempts exhausted",
		zap.String("booking_id", bookingID.String()),
		zap.Int("attempts", s.attempts),
	)
	return nil, ErrDuplicateTicket
}

func (s *ticketService) GetByBooking(ctx context.Context, bookingID string) (*response.TicketResponse, error) {
	id, err := parseID(bookingID, "booking")
	if err != nil {
		return nil, err
	}

	ticket, err := s.repo.Ticket.FindByBookingID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, notFound("ticket")
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// CheckIn marks a valid ticket used and counts its visitors at the
// destination, in one transaction. Missing booking, package or destination
// links skip the count without failing the check-in.
func (s *ticketService) CheckIn(ctx context.Context, req *request.CheckInRequest) (*response.CheckInResponse, error) {
	var checked *entity.Ticket

	err := s.repo.Tx.WithinTransaction(ctx, func(tx *repository.Repository) error {
		ticket, err := tx.Ticket.MarkUsed(ctx, req.QRCode, s.now())
		if err != nil {
			return err
		}
		if ticket == nil {
			return s.checkInRejection(ctx, tx, req.QRCode)
		}
		checked = ticket

		return s.countVisitors(ctx, tx, ticket)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Ticket checked in",
		zap.String("ticket_id", checked.ID.String()),
		zap.String("booking_id", checked.BookingID.String()),
	)

	return &response.CheckInResponse{
		Success:     true,
		Message:     "Check-in successful",
		TicketID:    checked.ID.String(),
		CheckInTime: *checked.CheckInTime,
	}, nil
}

// checkInRejection explains why the guarded update matched no row.
func (s *ticketService) checkInRejection(ctx context.Context, tx *repository.Repository, qrCode string) error {
	ticket, err := tx.Ticket.FindByQRCode(ctx, qrCode)
	if err != nil {
		return err
	}
	if ticket == nil {
		return notFound("ticket")
	}

	switch ticket.Status {
	case entity.TicketStatusUsed:
		return ErrTicketAlreadyUsed
	case entity.TicketStatusExpired:
		return ErrTicketExpired
	}
	return fmt.Errorf("ticket %s in unexpected status %q", ticket.ID, ticket.Status)
}

func (s *ticketService) countVisitors(ctx context.Context, tx *repository.Repository, ticket *entity.Ticket) error {
	booking, err := tx.Booking.FindByID(ctx, ticket.BookingID)
	if err != nil {
		return err
	}
	if booking == nil || booking.PackageID == nil {
		s.log.Warn("Visitor count skipped: no package link", zap.String("ticket_id", ticket.ID.String()))
		return nil
	}

	pkg, err := tx.Package.FindByID(ctx, *booking.PackageID)
	if err != nil {
		return err
	}
	if pkg == nil || pkg.DestinationID == nil {
		s.log.Warn("Visitor count skipped: no destination link", zap.String("ticket_id", ticket.ID.String()))
		return nil
	}

	err = tx.Destination.IncrementVisitors(ctx, *pkg.DestinationID, booking.VisitorCount())
	if errors.Is(err, repository.ErrNoRowsAffected) {
		s.log.Warn("Visitor count skipped: destination missing",
			zap.String("destination_id", pkg.DestinationID.String()))
		return nil
	}
	return err
}

// Validate never fails: unknown codes and lookup errors both report valid=false.
func (s *ticketService) Validate(ctx context.Context, qrCode string) *response.ValidateTicketResponse {
	ticket, err := s.repo.Ticket.FindByQRCode(ctx, qrCode)
	if err != nil {
		s.log.Error("Ticket validation lookup failed", zap.Error(err))
		return &response.ValidateTicketResponse{Valid: false, Message: "Ticket could not be validated"}
	}
	if ticket == nil {
		return &response.ValidateTicketResponse{Valid: false, Message: "Ticket not found"}
	}

	resp := &response.ValidateTicketResponse{
		Valid:  ticket.Status == entity.TicketStatusValid,
		Status: ticket.Status,
	}
	switch ticket.Status {
	case entity.TicketStatusValid:
		resp.Message = "Ticket is valid"
	case entity.TicketStatusUsed:
		resp.Message = "Ticket already used"
	default:
		resp.Message = "Ticket expired"
	}

	booking, err := s.repo.Booking.FindByID(ctx, ticket.BookingID)
	if err != nil {
		s.log.Warn("Booking lookup failed during validation", zap.Error(err))
	}
	if booking != nil {
		resp.Booking = &response.TicketBookingSnapshot{
			CustomerName: booking.CustomerName,
			Date:         booking.Date.Format(entity.DateLayout),
			NumVisitors:  booking.VisitorCount(),
		}
	}

	return resp
}

// Expire is the administrative valid -> expired transition.
func (s *ticketService) Expire(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	id, err := parseID(ticketID, "ticket")
	if err != nil {
		return nil, err
	}

	ticket, err := s.repo.Ticket.Expire(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		current, err := s.repo.Ticket.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, notFound("ticket")
		}
		return nil, fmt.Errorf("%w: ticket is %s", ErrInvalidTransition, current.Status)
	}

	s.log.Info("Ticket expired", zap.String("ticket_id", id.String()))

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketService) List(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit()

	tickets, err := s.repo.Ticket.FindAll(ctx, limit, utils.CalculateOffset(page, limit))
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Ticket.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.TicketResponse, len(tickets))
	for i, t := range tickets {
		out[i] = response.TicketToResponse(t)
	}
	return response.NewPaginatedResponse(out, page, limit, total), nil
}

// QRImage renders a known ticket's token as a PNG.
func (s *ticketService) QRImage(ctx context.Context, qrCode string) ([]byte, error) {
	ticket, err := s.repo.Ticket.FindByQRCode(ctx, qrCode)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, notFound("ticket")
	}

	png, err := qrcode.Encode(ticket.QRCode, qrcode.Medium, qrImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}
	return png, nil
}
