// Package store is the single application state object. It owns the session,
// the booking log and the catalog, runs one command at a time and notifies
// subscribers after each change.
package store

import (
	"context"
	"sync"

	"almanack/database/kv"
	"almanack/models"
	"almanack/services/booking"
	"almanack/services/catalog"
	"almanack/services/navigation"
	"almanack/services/session"
	"almanack/utils"

	"go.uber.org/zap"
)

// Options configure New. Zero values select the defaults.
type Options struct {
	UnitPrice float64
	Catalog   *catalog.Catalog
	Clock     utils.Clock
	Logger    *zap.Logger
}

// Store is safe for concurrent use; commands and queries are serialized.
type Store struct {
	mu       sync.Mutex
	port     *kv.Port
	session  *session.Manager
	bookings *booking.Store
	catalog  *catalog.Catalog
	guard    *navigation.Guard
	clock    utils.Clock
	logger   *zap.Logger

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

// New builds a store on backend and loads any persisted state.
func New(ctx context.Context, backend kv.Backend, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = utils.RealClock()
	}

	port := kv.NewPort(backend, logger.Named("kv"))
	s := &Store{
		port:     port,
		session:  session.NewManager(port, logger.Named("session")),
		bookings: booking.NewStore(port, opts.UnitPrice, logger.Named("booking")),
		catalog:  opts.Catalog,
		clock:    opts.Clock,
		logger:   logger,
		subs:     make(map[int]func(Event)),
	}
	s.guard = navigation.NewGuard(s.session)
	s.session.Load(ctx)
	s.bookings.Load(ctx)
	logger.Info("store loaded",
		zap.Bool("isLoggedIn", s.session.IsLoggedIn()),
		zap.Int("bookings", s.bookings.Len()),
	)
	return s
}

// Login marks the user as logged in.
func (s *Store) Login(ctx context.Context) error {
	s.mu.Lock()
	err := s.session.Login(ctx)
	s.mu.Unlock()

	s.publish(Event{Kind: SessionChanged, LoggedIn: true})
	return err
}

// Logout logs the user out and wipes every persisted key, the booking log
// included.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	err := s.session.Logout(ctx)
	s.bookings.Forget()
	s.mu.Unlock()

	s.logger.Info("logged out; store wiped")
	s.publish(Event{Kind: StoreWiped})
	return err
}

// ResetBookings deletes the booking log but keeps the session.
func (s *Store) ResetBookings(ctx context.Context) error {
	s.mu.Lock()
	err := s.bookings.Reset(ctx)
	loggedIn := s.session.IsLoggedIn()
	s.mu.Unlock()

	s.publish(Event{Kind: BookingsReset, LoggedIn: loggedIn})
	return err
}

// AddBooking creates a booking. Validation errors leave the store unchanged.
func (s *Store) AddBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	s.mu.Lock()
	b, err := s.bookings.Add(ctx, req)
	s.mu.Unlock()

	if b.ID != 0 {
		s.publish(Event{Kind: BookingAdded, LoggedIn: s.IsLoggedIn(), Booking: &b})
	}
	return b, err
}

func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsLoggedIn()
}

func (s *Store) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings.List()
}

func (s *Store) UnitPrice() float64 { return s.bookings.UnitPrice() }

// Catalog returns the immutable movie catalog.
func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

func (s *Store) FilterMovies(query string) []models.Movie {
	return s.catalog.Filter(query)
}

func (s *Store) Movie(id string) (models.Movie, bool) {
	return s.catalog.Get(id)
}

// Enter asks the navigation guard whether a screen may be entered now.
func (s *Store) Enter(req navigation.Request) navigation.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.Enter(req)
}

// Resolve follows guard redirects to the screen that will finally render.
func (s *Store) Resolve(req navigation.Request) navigation.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.Resolve(req)
}

// Route returns the guard's decision for req together with the screen that
// finally renders, both taken from the same session state.
func (s *Store) Route(req navigation.Request) (decision, final navigation.Decision) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.guard.Enter(req), s.guard.Resolve(req)
}

// NewDraft starts a selection form for movie dated today.
func (s *Store) NewDraft(movie models.Movie) *booking.Draft {
	return booking.NewDraft(movie, s.clock)
}

// Backend returns the storage backend, for health checks.
func (s *Store) Backend() kv.Backend { return s.port.Backend() }
