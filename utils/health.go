package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose liveness can be probed, such as a storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of the storage backend.
type HealthStatus struct {
	Store     string    `json:"store"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings p once and records the result.
func CheckHealth(ctx context.Context, name string, p Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{Store: name, Healthy: true, CheckedAt: time.Now()}
	if err := p.Ping(ctx); err != nil {
		status.Healthy = false
		status.Error = err.Error()
		GetLogger().Warn("store health check failed", zap.String("store", name), zap.Error(err))
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, name string, p Pinger, every time.Duration) {
	CheckHealth(ctx, name, p)
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, name, p)
			}
		}
	}()
}
