package repository

import (
	"context"
	"fmt"

	"pulau-harapan/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Destination  DestinationRepository
	Package      PackageRepository
	Booking      BookingRepository
	Ticket       TicketRepository
	UMKM         UMKMRepository
	Product      ProductRepository
	Content      ContentRepository
	Feedback     FeedbackRepository
	Equipment    EquipmentRepository
	Rental       RentalRepository
	Guide        GuideRepository
	GuideBooking GuideBookingRepository

	Tx Transactor
}

// Transactor runs fn against a Repository whose members share one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repo *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.Tx = &pgxTransactor{db: db, log: log.With(zap.String("repository", "tx"))}
	return repo
}

func newRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Destination:  NewDestinationRepository(db, log),
		Package:      NewPackageRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Ticket:       NewTicketRepository(db, log),
		UMKM:         NewUMKMRepository(db, log),
		Product:      NewProductRepository(db, log),
		Content:      NewContentRepository(db, log),
		Feedback:     NewFeedbackRepository(db, log),
		Equipment:    NewEquipmentRepository(db, log),
		Rental:       NewRentalRepository(db, log),
		Guide:        NewGuideRepository(db, log),
		GuideBooking: NewGuideBookingRepository(db, log),
	}
}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func (t *pgxTransactor) WithinTransaction(ctx context.Context, fn func(repo *Repository) error) (err error) {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		t.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				t.log.Warn("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	txRepo := newRepository(tx, t.log)
	txRepo.Tx = nestedTransactor{repo: txRepo}

	if err = fn(txRepo); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		t.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// nestedTransactor joins the enclosing transaction.
type nestedTransactor struct {
	repo *Repository
}

func (n nestedTransactor) WithinTransaction(_ context.Context, fn func(repo *Repository) error) error {
	return fn(n.repo)
}
