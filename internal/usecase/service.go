package usecase

import (
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Ticket      TicketService
	Rental      RentalService
	Guide       GuideService
	Booking     BookingService
	Destination DestinationService
	Package     PackageService
	UMKM        UMKMService
	Content     ContentService
	Feedback    FeedbackService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo, config, log),
		Ticket:      NewTicketService(repo, config, log),
		Rental:      NewRentalService(repo, log),
		Guide:       NewGuideService(repo, log),
		Booking:     NewBookingService(repo, log),
		Destination: NewDestinationService(repo, log),
		Package:     NewPackageService(repo, log),
		UMKM:        NewUMKMService(repo, log),
		Content:     NewContentService(repo, log),
		Feedback:    NewFeedbackService(repo, log),
	}
}
