package handlers

import (
	"errors"
	"net/http"

	"almanack/models"
	"almanack/services/booking"
	"almanack/services/store"
	"almanack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	store *store.Store
}

func NewBookingHandler(s *store.Store) *BookingHandler {
	return &BookingHandler{store: s}
}

type bookingView struct {
	models.Booking
	DisplayAmount string `json:"displayAmount"`
}

// ListBookings returns the booking history in creation order.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	list := h.store.Bookings()
	views := make([]bookingView, len(list))
	for i, b := range list {
		views[i] = bookingView{Booking: b, DisplayAmount: booking.FormatAmount(b.Amount)}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": views, "count": len(views)})
}

// AddBooking creates a booking. The movie is given by name, or by catalog id
// in "movieId".
func (h *BookingHandler) AddBooking(c *gin.Context) {
	logger := getLogger(c)

	var input struct {
		MovieID string `json:"movieId"`
		models.BookingRequest
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	req := input.BookingRequest
	if input.MovieID != "" {
		movie, ok := h.store.Movie(input.MovieID)
		if !ok {
			utils.JSONError(c, http.StatusNotFound, "Movie not found", input.MovieID)
			return
		}
		req.MovieName = movie.Name
	}

	b, err := h.store.AddBooking(c.Request.Context(), req)
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	case err != nil && b.ID == 0:
		logger.Error("Booking failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		return
	case err != nil:
		logger.Warn("Booking created but not persisted", zap.Int64("id", b.ID), zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":   bookingView{Booking: b, DisplayAmount: booking.FormatAmount(b.Amount)},
		"persisted": err == nil,
		"redirect":  "/activity",
	})
}

// ResetBookings empties the booking history without ending the session.
func (h *BookingHandler) ResetBookings(c *gin.Context) {
	if err := h.store.ResetBookings(c.Request.Context()); err != nil {
		getLogger(c).Error("Failed to persist booking reset", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": []bookingView{}, "count": 0})
}
