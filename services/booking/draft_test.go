package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"almanack/models"
	"almanack/utils"
)

func newDraft() *Draft {
	clock := utils.FixedClock(time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC))
	return NewDraft(models.Movie{ID: "2", Name: "Inception", Year: 2010}, clock)
}

func TestDraftDefaults(t *testing.T) {
	d := newDraft()
	if d.TicketCount != 1 || d.Time != "18:00" || d.Date != "19-10-2026" {
		t.Fatalf("draft = %+v", d)
	}
}

func TestDraftDecrementStopsAtOne(t *testing.T) {
	d := newDraft()
	d.Decrement()
	d.Decrement()
	if d.TicketCount != 1 {
		t.Fatalf("TicketCount = %d", d.TicketCount)
	}
	d.Increment()
	d.Increment()
	d.Decrement()
	if d.TicketCount != 2 {
		t.Fatalf("TicketCount = %d, want 2", d.TicketCount)
	}
}

func TestDraftSetDateKeepsValueOnError(t *testing.T) {
	d := newDraft()
	if err := d.SetDate("24-12-2026"); err != nil {
		t.Fatal(err)
	}
	err := d.SetDate("2026-12-25")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if d.Date != "24-12-2026" {
		t.Fatalf("Date = %q, invalid input should not replace it", d.Date)
	}
}

func TestDraftSetTime(t *testing.T) {
	d := newDraft()
	if err := d.SetTime("09:00"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetTime("10:30"); err == nil {
		t.Fatal("10:30 is not an offered show time")
	}
	if d.Time != "09:00" {
		t.Fatalf("Time = %q", d.Time)
	}
}

func TestDraftRequestBooks(t *testing.T) {
	s, _ := newStore(t)
	d := newDraft()
	d.Increment()
	d.Increment()

	b, err := s.Add(context.Background(), d.Request())
	if err != nil {
		t.Fatal(err)
	}
	if b.MovieName != "Inception" || b.TicketCount != 3 || b.Amount != 75 {
		t.Fatalf("booking = %+v", b)
	}
}
