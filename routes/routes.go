package routes

import (
	"strings"
	"time"

	"almanack/handlers"
	"almanack/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers login, logout and session state endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)
	}
	r.GET("/api/session", hb.SessionHandler)
}

// RegisterCatalogRoutes registers the movie catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/movies")
	{
		api.GET("", hb.ListMoviesHandler)
		api.GET("/:id", hb.GetMovieHandler)

		// Protected routes (Require Session)
		api.GET("/:id/draft", middleware.RequireSession(hb.Store), hb.NewDraftHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking log.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.RequireSession(hb.Store))
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.POST("", hb.AddBookingHandler)
		bookingGroup.DELETE("", hb.ResetBookingsHandler)
	}
}

// RegisterNavigationRoutes registers the screen guard endpoint.
func RegisterNavigationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/navigation", hb.EnterScreenHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// CORSConfig builds the CORS policy for a comma separated origin list. "*"
// allows any origin without credentials.
func CORSConfig(origins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	var list []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			list = append(list, o)
		}
	}
	if len(list) == 0 || (len(list) == 1 && list[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = list
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, corsOrigins string) {
	r.Use(cors.New(CORSConfig(corsOrigins)))

	RegisterHealthRoute(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNavigationRoutes(r, hb)
}
