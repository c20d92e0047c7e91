package store

import "almanack/models"

// EventKind names a state change.
type EventKind string

const (
	SessionChanged EventKind = "session_changed"
	BookingAdded   EventKind = "booking_added"
	BookingsReset  EventKind = "bookings_reset"
	StoreWiped     EventKind = "store_wiped"
)

// Event is delivered to subscribers after a command has committed.
type Event struct {
	Kind     EventKind
	LoggedIn bool
	Booking  *models.Booking
}

// Subscribe registers fn for every future event and returns a function that
// removes it. fn runs synchronously on the goroutine that issued the command,
// after the store lock has been released.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) publish(e Event) {
	s.subMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
