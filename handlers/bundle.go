package handlers

import (
	"almanack/services/auth"
	"almanack/services/store"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Store *store.Store

	// Session endpoints
	LoginHandler   gin.HandlerFunc
	LogoutHandler  gin.HandlerFunc
	SessionHandler gin.HandlerFunc

	// Catalog endpoints
	ListMoviesHandler gin.HandlerFunc
	GetMovieHandler   gin.HandlerFunc
	NewDraftHandler   gin.HandlerFunc

	// Booking endpoints
	ListBookingsHandler  gin.HandlerFunc
	AddBookingHandler    gin.HandlerFunc
	ResetBookingsHandler gin.HandlerFunc

	// Navigation endpoints
	EnterScreenHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle wires every handler to s and the login service.
func NewHandlerBundle(s *store.Store, loginSvc *auth.Service) *HandlerBundle {
	authHandler := NewAuthHandler(s, loginSvc)
	movieHandler := NewMovieHandler(s)
	bookingHandler := NewBookingHandler(s)
	navHandler := NewNavigationHandler(s)

	return &HandlerBundle{
		Store: s,

		LoginHandler:   authHandler.Login,
		LogoutHandler:  authHandler.Logout,
		SessionHandler: authHandler.Session,

		ListMoviesHandler: movieHandler.ListMovies,
		GetMovieHandler:   movieHandler.GetMovie,
		NewDraftHandler:   movieHandler.NewDraft,

		ListBookingsHandler:  bookingHandler.ListBookings,
		AddBookingHandler:    bookingHandler.AddBooking,
		ResetBookingsHandler: bookingHandler.ResetBookings,

		EnterScreenHandler: navHandler.EnterScreen,

		HealthHandler: Health,
	}
}
