package wire

import (
	"net/http"

	"pulau-harapan/internal/adaptor"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/usecase"
	"pulau-harapan/pkg/middleware"
	"pulau-harapan/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: NewRouter(handler, repo.Session, config, logger),
	}
}

// NewRouter mounts every resource under /api. Session auth guards user
// administration and ticket expiry.
func NewRouter(
	handler *adaptor.Handler,
	sessions repository.SessionRepository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	auth := middleware.AuthSession(sessions, logger)

	r.Route("/api", func(r chi.Router) {
		wireUser(r, handler.Auth, handler.User, auth)
		wireTicket(r, handler.Ticket, auth)
		wireRental(r, handler.Rental)
		wireGuide(r, handler.Guide)
		wireBooking(r, handler.Booking)
		wireCatalog(r, handler.Destination, handler.Package, handler.UMKM)
		wireContent(r, handler.Content, handler.Feedback)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
