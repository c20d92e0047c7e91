// Package booking owns the append-only log of ticket purchases.
package booking

import (
	"context"
	"strings"

	"almanack/database/kv"
	"almanack/models"

	"go.uber.org/zap"
)

// Key is the storage key of the booking log.
const Key = "bookings"

// Store is the booking log. It is not safe for concurrent use; callers
// serialize commands.
type Store struct {
	port      *kv.Port
	logger    *zap.Logger
	unitPrice float64
	bookings  []models.Booking
	lastID    int64
}

// NewStore returns an empty store pricing tickets at unitPrice. Call Load to
// restore the persisted log.
func NewStore(port *kv.Port, unitPrice float64, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	return &Store{port: port, logger: logger, unitPrice: unitPrice}
}

// Load replaces the in-memory log with the persisted one. A missing or
// unreadable entry yields an empty log.
func (s *Store) Load(ctx context.Context) {
	s.bookings = kv.Load(ctx, s.port, Key, []models.Booking{})
	s.lastID = 0
	for _, b := range s.bookings {
		if b.ID > s.lastID {
			s.lastID = b.ID
		}
	}
	s.logger.Debug("booking log loaded", zap.Int("count", len(s.bookings)), zap.Int64("lastID", s.lastID))
}

func (s *Store) UnitPrice() float64 { return s.unitPrice }

// List returns a copy of the log in insertion order.
func (s *Store) List() []models.Booking {
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *Store) Len() int { return len(s.bookings) }

// Add validates and prices req, appends the booking and writes the log
// through. On a validation error nothing changes. A write error is returned
// after the booking has been committed in memory.
func (s *Store) Add(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	if err := ValidateRequest(req); err != nil {
		s.logger.Info("booking rejected", zap.Error(err))
		return models.Booking{}, err
	}

	s.lastID++
	b := models.Booking{
		ID:          s.lastID,
		MovieName:   strings.TrimSpace(req.MovieName),
		TicketCount: req.TicketCount,
		Amount:      CalculateAmount(s.unitPrice, req.TicketCount),
		Time:        req.Time,
		Date:        req.Date,
	}
	s.bookings = append(s.bookings, b)

	if err := s.port.Set(ctx, Key, s.bookings); err != nil {
		s.logger.Error("failed to persist booking log", zap.Int64("id", b.ID), zap.Error(err))
		return b, err
	}
	s.logger.Info("booking created",
		zap.Int64("id", b.ID),
		zap.String("movie", b.MovieName),
		zap.Int("tickets", b.TicketCount),
		zap.Float64("amount", b.Amount),
	)
	return b, nil
}

// Forget empties the in-memory log without touching storage. Used after the
// backing namespace has already been cleared. The id counter is kept so ids
// handed out later in this process never repeat an earlier one.
func (s *Store) Forget() {
	s.bookings = nil
}

// Reset empties the log and deletes only its storage key. Like Forget it
// keeps the id counter.
func (s *Store) Reset(ctx context.Context) error {
	s.Forget()
	if err := s.port.Delete(ctx, Key); err != nil {
		s.logger.Error("failed to reset booking log", zap.Error(err))
		return err
	}
	return nil
}
