package models

// Booking is an immutable record of a single ticket purchase.
type Booking struct {
	ID          int64   `bson:"id" json:"id"`           // Strictly increasing in creation order
	MovieName   string  `bson:"movie" json:"movie"`     // Name of the booked movie
	TicketCount int     `bson:"tickets" json:"tickets"` // Always >= 1
	Amount      float64 `bson:"amount" json:"amount"`   // UnitPrice * TicketCount
	Time        string  `bson:"time" json:"time"`       // Show time, "HH:MM"
	Date        string  `bson:"date" json:"date"`       // Show date, "DD-MM-YYYY"
}

// BookingRequest is the input of a new booking.
type BookingRequest struct {
	MovieName   string `json:"movieName"`
	TicketCount int    `json:"ticketCount"`
	Time        string `json:"time"`
	Date        string `json:"date"`
}
