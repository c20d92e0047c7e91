// Package session owns the durable logged-in flag.
package session

import (
	"context"

	"almanack/database/kv"

	"go.uber.org/zap"
)

// Key is the storage key of the logged-in flag.
const Key = "isLoggedIn"

// State is the session state.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

// Manager is the two-state session machine. It is not safe for concurrent
// use; callers serialize commands.
type Manager struct {
	port     *kv.Port
	logger   *zap.Logger
	loggedIn bool
}

func NewManager(port *kv.Port, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{port: port, logger: logger}
}

// Load restores the persisted flag. A missing or unreadable entry yields
// LoggedOut.
func (m *Manager) Load(ctx context.Context) {
	m.loggedIn = kv.Load(ctx, m.port, Key, false)
}

func (m *Manager) IsLoggedIn() bool { return m.loggedIn }

func (m *Manager) State() State {
	if m.loggedIn {
		return LoggedIn
	}
	return LoggedOut
}

// Login moves to LoggedIn and writes the flag through. Calling it while
// already logged in rewrites the same value.
func (m *Manager) Login(ctx context.Context) error {
	m.loggedIn = true
	return m.persist(ctx)
}

// Logout moves to LoggedOut and clears the whole store namespace, including
// the booking log.
func (m *Manager) Logout(ctx context.Context) error {
	m.loggedIn = false
	if err := m.port.Clear(ctx); err != nil {
		m.logger.Error("failed to clear store on logout", zap.Error(err))
		return err
	}
	return nil
}

// Reset drops the session flag only, leaving other keys alone.
func (m *Manager) Reset(ctx context.Context) error {
	m.loggedIn = false
	if err := m.port.Delete(ctx, Key); err != nil {
		m.logger.Error("failed to reset session", zap.Error(err))
		return err
	}
	return nil
}

func (m *Manager) persist(ctx context.Context) error {
	if err := m.port.Set(ctx, Key, m.loggedIn); err != nil {
		m.logger.Error("failed to persist session", zap.Bool("isLoggedIn", m.loggedIn), zap.Error(err))
		return err
	}
	return nil
}
