package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memDB backs every fake repository. One mutex makes each method atomic,
// which is what the guarded SQL statements give us in Postgres.
type memDB struct {
	mu sync.Mutex

	users         map[uuid.UUID]entity.User
	sessions      map[uuid.UUID]entity.Session
	destinations  map[uuid.UUID]entity.Destination
	packages      map[uuid.UUID]entity.Package
	bookings      map[uuid.UUID]entity.Booking
	tickets       map[uuid.UUID]entity.Ticket
	umkm          map[uuid.UUID]entity.UMKM
	products      map[uuid.UUID]entity.Product
	contents      map[uuid.UUID]entity.Content
	feedback      map[uuid.UUID]entity.Feedback
	equipment     map[uuid.UUID]entity.CampingEquipment
	rentals       map[uuid.UUID]entity.EquipmentRental
	guides        map[uuid.UUID]entity.TourGuide
	guideBookings map[uuid.UUID]entity.GuideBooking

	// txCount counts WithinTransaction calls.
	txCount int
}

func newMemDB() *memDB {
	return &memDB{
		users:         map[uuid.UUID]entity.User{},
		sessions:      map[uuid.UUID]entity.Session{},
		destinations:  map[uuid.UUID]entity.Destination{},
		packages:      map[uuid.UUID]entity.Package{},
		bookings:      map[uuid.UUID]entity.Booking{},
		tickets:       map[uuid.UUID]entity.Ticket{},
		umkm:          map[uuid.UUID]entity.UMKM{},
		products:      map[uuid.UUID]entity.Product{},
		contents:      map[uuid.UUID]entity.Content{},
		feedback:      map[uuid.UUID]entity.Feedback{},
		equipment:     map[uuid.UUID]entity.CampingEquipment{},
		rentals:       map[uuid.UUID]entity.EquipmentRental{},
		guides:        map[uuid.UUID]entity.TourGuide{},
		guideBookings: map[uuid.UUID]entity.GuideBooking{},
	}
}

func (db *memDB) repository() *repository.Repository {
	repo := &repository.Repository{
		User:         &fakeUserRepo{db},
		Session:      &fakeSessionRepo{db},
		Destination:  &fakeDestinationRepo{db},
		Package:      &fakePackageRepo{db},
		Booking:      &fakeBookingRepo{db},
		Ticket:       &fakeTicketRepo{db: db},
		UMKM:         &fakeUMKMRepo{db},
		Product:      &fakeProductRepo{db},
		Content:      &fakeContentRepo{db},
		Feedback:     &fakeFeedbackRepo{db},
		Equipment:    &fakeEquipmentRepo{db},
		Rental:       &fakeRentalRepo{db},
		Guide:        &fakeGuideRepo{db},
		GuideBooking: &fakeGuideBookingRepo{db},
	}
	repo.Tx = fakeTx{db: db, repo: repo}
	return repo
}

type fakeTx struct {
	db   *memDB
	repo *repository.Repository
}

func (t fakeTx) WithinTransaction(_ context.Context, fn func(repo *repository.Repository) error) error {
	t.db.mu.Lock()
	t.db.txCount++
	t.db.mu.Unlock()
	return fn(t.repo)
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session:  utils.SessionConfig{ExpiryHours: 24},
		Security: utils.SecurityConfig{BcryptCost: 4},
		Ticket:   utils.TicketConfig{QRPrefix: "PH", IssueAttempts: 3},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// sortedByCreated returns values ordered oldest first, ties broken by id.
func sortedByCreated[T any](m map[uuid.UUID]T, created func(T) (time.Time, uuid.UUID)) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, idi := created(out[i])
		tj, idj := created(out[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi.String() < idj.String()
	})
	return out
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// Users

type fakeUserRepo struct{ db *memDB }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.db.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) find(match func(entity.User) bool) *entity.User {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if match(u) {
			return &u
		}
	}
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.ID == id }), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email }), nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username }), nil
}

func (r *fakeUserRepo) filtered(role *entity.UserRole) []entity.User {
	all := sortedByCreated(r.db.users, func(u entity.User) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID })
	var out []entity.User
	for _, u := range all {
		if role == nil || u.Role == *role {
			out = append(out, u)
		}
	}
	return out
}

func (r *fakeUserRepo) FindAll(_ context.Context, role *entity.UserRole, limit, offset int) ([]*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.User
	for _, u := range page(r.filtered(role), limit, offset) {
		out = append(out, &u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll(_ context.Context, role *entity.UserRole) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.filtered(role))), nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context) (map[entity.UserRole]int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := map[entity.UserRole]int64{}
	for _, u := range r.db.users {
		out[u.Role]++
	}
	return out, nil
}

func (r *fakeUserRepo) CountActive(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, u := range r.db.users {
		if u.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[user.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	for _, u := range r.db.users {
		if u.ID != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.db.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	u.LastLogin = &at
	r.db.users[id] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.db.users, id)
	return nil
}

// Sessions

type fakeSessionRepo struct{ db *memDB }

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range r.db.sessions {
		if s.Token == parsed && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			if u, ok := r.db.users[s.UserID]; ok && u.IsActive {
				s.Role = u.Role
				return &s, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return repository.ErrNoRowsAffected
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for id, s := range r.db.sessions {
		if s.Token == parsed && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
			r.db.sessions[id] = s
			return nil
		}
	}
	return repository.ErrNoRowsAffected
}

func (r *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for id, s := range r.db.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			s.RevokedAt = &now
			r.db.sessions[id] = s
		}
	}
	return nil
}

// Destinations and packages

type fakeDestinationRepo struct{ db *memDB }

func (r *fakeDestinationRepo) Create(_ context.Context, d *entity.Destination) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.destinations[d.ID] = *d
	return nil
}

func (r *fakeDestinationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Destination, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if d, ok := r.db.destinations[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *fakeDestinationRepo) FindAll(_ context.Context) ([]*entity.Destination, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Destination
	for _, d := range sortedByCreated(r.db.destinations, func(d entity.Destination) (time.Time, uuid.UUID) { return d.CreatedAt, d.ID }) {
		out = append(out, &d)
	}
	return out, nil
}

func (r *fakeDestinationRepo) IncrementVisitors(_ context.Context, id uuid.UUID, count int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d, ok := r.db.destinations[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	d.CurrentVisitors += count
	r.db.destinations[id] = d
	return nil
}

func (r *fakeDestinationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.destinations[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.db.destinations, id)
	return nil
}

type fakePackageRepo struct{ db *memDB }

func (r *fakePackageRepo) Create(_ context.Context, p *entity.Package) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p.DestinationID != nil {
		if _, ok := r.db.destinations[*p.DestinationID]; !ok {
			return repository.ErrMissingReference
		}
	}
	r.db.packages[p.ID] = *p
	return nil
}

func (r *fakePackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Package, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p, ok := r.db.packages[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePackageRepo) FindAll(_ context.Context) ([]*entity.Package, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Package
	for _, p := range sortedByCreated(r.db.packages, func(p entity.Package) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID }) {
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakePackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.packages[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.db.packages, id)
	return nil
}

// Bookings and tickets

type fakeBookingRepo struct{ db *memDB }

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if b, ok := r.db.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Booking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := sortedByCreated(r.db.bookings, func(b entity.Booking) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	var out []*entity.Booking
	for _, b := range page(all, limit, offset) {
		out = append(out, &b)
	}
	return out, nil
}

func (r *fakeBookingRepo) CountAll(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.bookings)), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.bookings[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	b.Status = status
	r.db.bookings[id] = b
	return nil
}

type fakeTicketRepo struct {
	db *memDB

	// createHook, when set, runs before each Create and may fail it.
	createHook func(ticket *entity.Ticket) error
}

func (r *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	if r.createHook != nil {
		if err := r.createHook(ticket); err != nil {
			return err
		}
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.tickets {
		if t.QRCode == ticket.QRCode {
			return repository.ErrDuplicateQRCode
		}
		if t.BookingID == ticket.BookingID {
			return repository.ErrDuplicateBooking
		}
	}
	r.db.tickets[ticket.ID] = *ticket
	return nil
}

func (r *fakeTicketRepo) find(match func(entity.Ticket) bool) *entity.Ticket {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.tickets {
		if match(t) {
			return &t
		}
	}
	return nil
}

func (r *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return r.find(func(t entity.Ticket) bool { return t.ID == id }), nil
}

func (r *fakeTicketRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Ticket, error) {
	return r.find(func(t entity.Ticket) bool { return t.BookingID == bookingID }), nil
}

func (r *fakeTicketRepo) FindByQRCode(_ context.Context, qrCode string) (*entity.Ticket, error) {
	return r.find(func(t entity.Ticket) bool { return t.QRCode == qrCode }), nil
}

func (r *fakeTicketRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Ticket, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := sortedByCreated(r.db.tickets, func(t entity.Ticket) (time.Time, uuid.UUID) { return t.CreatedAt, t.ID })
	var out []*entity.Ticket
	for _, t := range page(all, limit, offset) {
		out = append(out, &t)
	}
	return out, nil
}

func (r *fakeTicketRepo) CountAll(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.tickets)), nil
}

func (r *fakeTicketRepo) MarkUsed(_ context.Context, qrCode string, at time.Time) (*entity.Ticket, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for id, t := range r.db.tickets {
		if t.QRCode == qrCode && t.Status == entity.TicketStatusValid {
			t.Status = entity.TicketStatusUsed
			t.CheckInTime = &at
			t.UpdatedAt = at
			r.db.tickets[id] = t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *fakeTicketRepo) Expire(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t, ok := r.db.tickets[id]
	if !ok || t.Status != entity.TicketStatusValid {
		return nil, nil
	}
	t.Status = entity.TicketStatusExpired
	r.db.tickets[id] = t
	return &t, nil
}

// UMKM, products, content, feedback

type fakeUMKMRepo struct{ db *memDB }

func (r *fakeUMKMRepo) Create(_ context.Context, u *entity.UMKM) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.umkm[u.ID] = *u
	return nil
}

func (r *fakeUMKMRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.UMKM, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.umkm[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *fakeUMKMRepo) FindAll(_ context.Context) ([]*entity.UMKM, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.UMKM
	for _, u := range sortedByCreated(r.db.umkm, func(u entity.UMKM) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID }) {
		out = append(out, &u)
	}
	return out, nil
}

func (r *fakeUMKMRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.umkm[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.db.umkm, id)
	for pid, p := range r.db.products {
		if p.UMKMID == id {
			delete(r.db.products, pid)
		}
	}
	return nil
}

type fakeProductRepo struct{ db *memDB }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.umkm[p.UMKMID]; !ok {
		return repository.ErrMissingReference
	}
	r.db.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p, ok := r.db.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) FindAll(_ context.Context, umkmID *uuid.UUID) ([]*entity.Product, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Product
	for _, p := range sortedByCreated(r.db.products, func(p entity.Product) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID }) {
		if umkmID != nil && p.UMKMID != *umkmID {
			continue
		}
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.products[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.db.products, id)
	return nil
}

type fakeContentRepo struct{ db *memDB }

func (r *fakeContentRepo) Create(_ context.Context, c *entity.Content) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.contents[c.ID] = *c
	return nil
}

func (r *fakeContentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Content, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c, ok := r.db.contents[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeContentRepo) FindAll(_ context.Context, publishedOnly bool) ([]*entity.Content, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.Content
	for _, c := range sortedByCreated(r.db.contents, func(c entity.Content) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID }) {
		if publishedOnly && !c.IsPublished {
			continue
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeContentRepo) Update(_ context.Context, c *entity.Content) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.contents[c.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	r.db.contents[c.ID] = *c
	return nil
}

func (r *fakeContentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.contents[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(r.db.contents, id)
	return nil
}

type fakeFeedbackRepo struct{ db *memDB }

func (r *fakeFeedbackRepo) Create(_ context.Context, f *entity.Feedback) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.feedback[f.ID] = *f
	return nil
}

func (r *fakeFeedbackRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Feedback, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if f, ok := r.db.feedback[id]; ok {
		return &f, nil
	}
	return nil, nil
}

func (r *fakeFeedbackRepo) FindAll(_ context.Context, kind *entity.FeedbackType) ([]*entity.Feedback, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	all := sortedByCreated(r.db.feedback, func(f entity.Feedback) (time.Time, uuid.UUID) { return f.CreatedAt, f.ID })
	var out []*entity.Feedback
	for i := len(all) - 1; i >= 0; i-- {
		f := all[i]
		if kind != nil && f.Type != *kind {
			continue
		}
		out = append(out, &f)
	}
	return out, nil
}

func (r *fakeFeedbackRepo) Update(_ context.Context, f *entity.Feedback) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.feedback[f.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	r.db.feedback[f.ID] = *f
	return nil
}

// Equipment and rentals

type fakeEquipmentRepo struct{ db *memDB }

func (r *fakeEquipmentRepo) Create(_ context.Context, e *entity.CampingEquipment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.equipment[e.ID] = *e
	return nil
}

func (r *fakeEquipmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.CampingEquipment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if e, ok := r.db.equipment[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeEquipmentRepo) FindAll(_ context.Context, availableOnly bool) ([]*entity.CampingEquipment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.CampingEquipment
	for _, e := range sortedByCreated(r.db.equipment, func(e entity.CampingEquipment) (time.Time, uuid.UUID) { return e.CreatedAt, e.ID }) {
		if availableOnly && (!e.IsAvailable || e.Available <= 0) {
			continue
		}
		out = append(out, &e)
	}
	return out, nil
}

func (r *fakeEquipmentRepo) Reserve(_ context.Context, id uuid.UUID, quantity int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.equipment[id]
	if !ok || e.Available < quantity {
		return repository.ErrNoRowsAffected
	}
	e.Available -= quantity
	r.db.equipment[id] = e
	return nil
}

func (r *fakeEquipmentRepo) Release(_ context.Context, id uuid.UUID, quantity int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.equipment[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	e.Available = min(e.Stock, e.Available+quantity)
	r.db.equipment[id] = e
	return nil
}

func (r *fakeEquipmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.equipment[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	for _, rental := range r.db.rentals {
		if rental.EquipmentID == id {
			return repository.ErrReferenced
		}
	}
	delete(r.db.equipment, id)
	return nil
}

type fakeRentalRepo struct{ db *memDB }

func (r *fakeRentalRepo) Create(_ context.Context, rental *entity.EquipmentRental) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.equipment[rental.EquipmentID]; !ok {
		return repository.ErrMissingReference
	}
	r.db.rentals[rental.ID] = *rental
	return nil
}

func (r *fakeRentalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.EquipmentRental, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if rental, ok := r.db.rentals[id]; ok {
		return &rental, nil
	}
	return nil, nil
}

func (r *fakeRentalRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.EquipmentRental, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRentalRepo) FindAll(_ context.Context) ([]*entity.EquipmentRental, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.EquipmentRental
	for _, rental := range sortedByCreated(r.db.rentals, func(x entity.EquipmentRental) (time.Time, uuid.UUID) { return x.CreatedAt, x.ID }) {
		out = append(out, &rental)
	}
	return out, nil
}

func (r *fakeRentalRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RentalStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rental, ok := r.db.rentals[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	rental.Status = status
	r.db.rentals[id] = rental
	return nil
}

func (r *fakeRentalRepo) MarkStockReleased(_ context.Context, id uuid.UUID) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rental, ok := r.db.rentals[id]
	if !ok || rental.StockReleased {
		return false, nil
	}
	rental.StockReleased = true
	r.db.rentals[id] = rental
	return true, nil
}

// Guides

type fakeGuideRepo struct{ db *memDB }

func (r *fakeGuideRepo) Create(_ context.Context, g *entity.TourGuide) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.guides[g.ID] = *g
	return nil
}

func (r *fakeGuideRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TourGuide, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if g, ok := r.db.guides[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (r *fakeGuideRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.TourGuide, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeGuideRepo) FindAll(_ context.Context, availableOnly bool) ([]*entity.TourGuide, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.TourGuide
	for _, g := range sortedByCreated(r.db.guides, func(g entity.TourGuide) (time.Time, uuid.UUID) { return g.CreatedAt, g.ID }) {
		if availableOnly && !g.IsAvailable {
			continue
		}
		out = append(out, &g)
	}
	return out, nil
}

type fakeGuideBookingRepo struct{ db *memDB }

func (r *fakeGuideBookingRepo) Create(_ context.Context, b *entity.GuideBooking) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.guideBookings[b.ID] = *b
	return nil
}

func (r *fakeGuideBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.GuideBooking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if b, ok := r.db.guideBookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r *fakeGuideBookingRepo) FindAll(_ context.Context) ([]*entity.GuideBooking, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []*entity.GuideBooking
	for _, b := range sortedByCreated(r.db.guideBookings, func(b entity.GuideBooking) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID }) {
		out = append(out, &b)
	}
	return out, nil
}

func (r *fakeGuideBookingRepo) CountOverlapping(_ context.Context, guideID uuid.UUID, start, end time.Time) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for _, b := range r.db.guideBookings {
		if b.GuideID != guideID || b.Status == entity.GuideBookingStatusCancelled {
			continue
		}
		if b.BookingDate.Before(end) && start.Before(b.EndDate()) {
			n++
		}
	}
	return n, nil
}

func (r *fakeGuideBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.GuideBookingStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	b, ok := r.db.guideBookings[id]
	if !ok {
		return repository.ErrNoRowsAffected
	}
	b.Status = status
	r.db.guideBookings[id] = b
	return nil
}

func nopLogger() *zap.Logger { return zap.NewNop() }
