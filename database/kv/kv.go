// Package kv is the durable key-value port behind the session and booking
// stores. Values are stored as JSON under a namespace so that one backend can
// be shared without collisions.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned by a Backend when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Backend is raw byte storage scoped to a single namespace.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// Clear removes every key of the namespace.
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// PersistenceError describes a failed read or decode of a stored value.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("kv %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Port serializes values to JSON on top of a Backend.
type Port struct {
	backend Backend
	logger  *zap.Logger
}

// NewPort wraps b. A nil logger discards persistence warnings.
func NewPort(b Backend, logger *zap.Logger) *Port {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Port{backend: b, logger: logger}
}

// Backend returns the underlying storage.
func (p *Port) Backend() Backend { return p.backend }

// Set serializes value and overwrites the stored entry for key.
func (p *Port) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv: marshal %q: %w", key, err)
	}
	if err := p.backend.Write(ctx, key, data); err != nil {
		return fmt.Errorf("kv: write %q: %w", key, err)
	}
	return nil
}

// Delete removes the listed keys only.
func (p *Port) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := p.backend.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("kv: delete %v: %w", keys, err)
	}
	return nil
}

// Clear removes every key of the port's namespace at once.
func (p *Port) Clear(ctx context.Context) error {
	if err := p.backend.Clear(ctx); err != nil {
		return fmt.Errorf("kv: clear: %w", err)
	}
	return nil
}

// Load returns the value stored under key, or def when the key is absent or
// the stored entry cannot be read or decoded. It never fails; read and decode
// errors are logged and swallowed.
func Load[T any](ctx context.Context, p *Port, key string, def T) T {
	v, err := Get[T](ctx, p, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.logger.Warn("falling back to default value", zap.String("key", key), zap.Error(err))
		}
		return def
	}
	return v
}

// Get is the strict form of Load: it reports ErrNotFound for a missing key
// and a *PersistenceError for anything else that goes wrong.
func Get[T any](ctx context.Context, p *Port, key string) (T, error) {
	var zero T
	data, err := p.backend.Read(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, &PersistenceError{Op: "read", Key: key, Err: err}
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, &PersistenceError{Op: "decode", Key: key, Err: err}
	}
	return v, nil
}
