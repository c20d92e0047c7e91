package booking

import (
	"regexp"
	"strings"

	"almanack/models"
)

// DateLayout is the time.Format layout of booking dates.
const DateLayout = "02-01-2006"

var (
	// Day and month ranges only; 31-02-9999 passes.
	datePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`)
	timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidDate reports whether s looks like DD-MM-YYYY.
func ValidDate(s string) bool { return datePattern.MatchString(s) }

// ValidTime reports whether s looks like HH:MM on a 24 hour clock.
func ValidTime(s string) bool { return timePattern.MatchString(s) }

// ValidateRequest checks a booking request before it is priced and stored.
func ValidateRequest(req models.BookingRequest) error {
	if strings.TrimSpace(req.MovieName) == "" {
		return NewValidationError("movieName", "movie name is required")
	}
	if req.TicketCount < 1 {
		return NewValidationError("ticketCount", "ticket count must be at least 1")
	}
	if !ValidTime(req.Time) {
		return NewValidationError("time", "time must be HH:MM")
	}
	if !ValidDate(req.Date) {
		return NewValidationError("date", "date must be DD-MM-YYYY")
	}
	return nil
}
