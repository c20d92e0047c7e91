package booking

import (
	"slices"

	"almanack/models"
	"almanack/utils"
)

// ShowTimes are the selectable show times.
var ShowTimes = []string{"09:00", "12:00", "18:00"}

const DefaultShowTime = "18:00"

// Draft is the editable state of the selection form for one movie.
type Draft struct {
	Movie       models.Movie `json:"movie"`
	TicketCount int          `json:"ticketCount"`
	Time        string       `json:"time"`
	Date        string       `json:"date"`
}

// NewDraft starts a draft for movie with one ticket for today's evening show.
func NewDraft(movie models.Movie, clock utils.Clock) *Draft {
	return &Draft{
		Movie:       movie,
		TicketCount: 1,
		Time:        DefaultShowTime,
		Date:        clock.Now().Format(DateLayout),
	}
}

func (d *Draft) Increment() { d.TicketCount++ }

// Decrement lowers the ticket count, never below one.
func (d *Draft) Decrement() {
	if d.TicketCount > 1 {
		d.TicketCount--
	}
}

// SetTime selects one of ShowTimes.
func (d *Draft) SetTime(t string) error {
	if !slices.Contains(ShowTimes, t) {
		return NewValidationError("time", "unknown show time "+t)
	}
	d.Time = t
	return nil
}

// SetDate replaces the date. An invalid value is rejected and the current
// date is kept.
func (d *Draft) SetDate(s string) error {
	if !ValidDate(s) {
		return NewValidationError("date", "date must be DD-MM-YYYY")
	}
	d.Date = s
	return nil
}

// Request builds the booking request for the draft.
func (d *Draft) Request() models.BookingRequest {
	return models.BookingRequest{
		MovieName:   d.Movie.Name,
		TicketCount: d.TicketCount,
		Time:        d.Time,
		Date:        d.Date,
	}
}
