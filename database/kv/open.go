package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"almanack/config"
	"almanack/database"
	"almanack/utils"

	"go.uber.org/zap"
)

// Drivers understood by Open.
const (
	DriverBadger = "badger"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// ErrInvalidNamespace is returned for a namespace that could overlap another
// one's keys.
var ErrInvalidNamespace = errors.New("kv: invalid namespace")

// namespaceReserved holds the key separator and the Redis glob metacharacters.
// A namespace containing any of them would let Clear reach into a sibling
// namespace ("app" would also wipe "app:tenant2").
const namespaceReserved = ":*?[]\\"

// ValidateNamespace rejects empty namespaces and ones containing the key
// separator or a glob metacharacter.
func ValidateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("%w: empty", ErrInvalidNamespace)
	}
	if i := strings.IndexAny(ns, namespaceReserved); i >= 0 {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidNamespace, ns, ns[i])
	}
	return nil
}

// Open builds the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (Backend, error) {
	ns := cfg.StoreNamespace
	if err := ValidateNamespace(ns); err != nil {
		return nil, err
	}
	switch cfg.StoreDriver {
	case DriverBadger, "":
		return OpenBadger(cfg.BadgerDir, ns, logger)
	case DriverRedis:
		client, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client, ns), nil
	case DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		return NewMongoBackend(client, cfg.MongoDatabase, ns), nil
	case DriverMemory:
		logger.Warn("using in-memory store; state will not survive a restart")
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("kv: unknown store driver %q", cfg.StoreDriver)
	}
}
