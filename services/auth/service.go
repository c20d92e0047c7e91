package auth

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SessionStarter is the part of the store Login needs.
type SessionStarter interface {
	Login(ctx context.Context) error
}

// Service runs a login attempt against the authenticator and, on success,
// starts the session.
type Service struct {
	auth    Authenticator
	session SessionStarter
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewService allows perMinute login attempts per minute with an equal burst.
// perMinute <= 0 disables throttling.
func NewService(a Authenticator, session SessionStarter, perMinute int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := rate.NewLimiter(rate.Inf, 0)
	if perMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	}
	return &Service{auth: a, session: session, limiter: limiter, logger: logger}
}

// Login returns ErrWrongCredentials, ErrTooManyAttempts or a *TransportError
// when the user is not logged in. Credentials are never logged.
func (s *Service) Login(ctx context.Context, creds Credentials) error {
	if !s.limiter.Allow() {
		s.logger.Warn("login throttled")
		return ErrTooManyAttempts
	}

	res, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		s.logger.Error("login error", zap.Error(err))
		return &TransportError{Err: err}
	}
	if !res.Success {
		s.logger.Info("login rejected")
		return ErrWrongCredentials
	}
	if err := s.session.Login(ctx); err != nil {
		// The session is already logged in memory; only persistence lagged.
		s.logger.Warn("session write failed after login", zap.Error(err))
	}
	s.logger.Info("login succeeded")
	return nil
}
