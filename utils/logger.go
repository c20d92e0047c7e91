package utils

import (
	"log"
	"sync"

	"almanack/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// newLogger builds the process logger: JSON at LOG_LEVEL (default info) in
// production, colored console at LOG_LEVEL (default debug) otherwise.
func newLogger(production bool, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level, zap.InfoLevel))
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level, zap.DebugLevel))
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

// GetLogger returns the process logger, building it from config.AppConfig on
// first use. It also becomes zap's global logger.
func GetLogger() *zap.Logger {
	loggerOnce.Do(func() {
		l, err := newLogger(config.IsProduction(), config.AppConfig.LogLevel)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		logger = l
		zap.ReplaceGlobals(logger)
	})
	return logger
}

func parseLevel(s string, fallback zapcore.Level) zapcore.Level {
	if s == "" {
		return fallback
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return fallback
	}
	return lvl
}
