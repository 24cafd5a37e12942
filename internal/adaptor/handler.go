package adaptor

import (
	"pulau-harapan/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Ticket      *TicketHandler
	Rental      *RentalHandler
	Guide       *GuideHandler
	Booking     *BookingHandler
	Destination *DestinationHandler
	Package     *PackageHandler
	UMKM        *UMKMHandler
	Content     *ContentHandler
	Feedback    *FeedbackHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, service.User, log),
		User:        NewUserHandler(service.User, log),
		Ticket:      NewTicketHandler(service.Ticket, log),
		Rental:      NewRentalHandler(service.Rental, log),
		Guide:       NewGuideHandler(service.Guide, log),
		Booking:     NewBookingHandler(service.Booking, log),
		Destination: NewDestinationHandler(service.Destination, log),
		Package:     NewPackageHandler(service.Package, log),
		UMKM:        NewUMKMHandler(service.UMKM, log),
		Content:     NewContentHandler(service.Content, log),
		Feedback:    NewFeedbackHandler(service.Feedback, log),
	}
}
