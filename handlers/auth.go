package handlers

import (
	"errors"
	"net/http"

	"almanack/services/auth"
	"almanack/services/store"
	"almanack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	store *store.Store
	login *auth.Service
}

func NewAuthHandler(s *store.Store, login *auth.Service) *AuthHandler {
	return &AuthHandler{store: s, login: login}
}

// Login checks credentials at the authentication boundary and starts the session.
func (h *AuthHandler) Login(c *gin.Context) {
	logger := getLogger(c)

	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	err := h.login.Login(c.Request.Context(), creds)
	var terr *auth.TransportError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"isLoggedIn": true, "redirect": "/booking"})
	case errors.Is(err, auth.ErrWrongCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MsgWrongCredentials})
	case errors.Is(err, auth.ErrTooManyAttempts):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": auth.MsgTooManyAttempts})
	case errors.As(err, &terr):
		logger.Error("Login error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": auth.MsgLoginFailed})
	default:
		logger.Error("Login error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": auth.MsgLoginFailed})
	}
}

// Logout ends the session and wipes all persisted state.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Logout(c.Request.Context()); err != nil {
		getLogger(c).Error("Logout could not clear storage", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"isLoggedIn": false, "redirect": "/login"})
}

// Session reports the current session state.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isLoggedIn": h.store.IsLoggedIn()})
}

// Health reports the last storage health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": http.StatusText(code), "store": status})
}
