package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckHealth(t *testing.T) {
	ok := CheckHealth(context.Background(), "memory", pingFunc(func(context.Context) error { return nil }))
	if !ok.Healthy || ok.Store != "memory" {
		t.Fatalf("status = %+v", ok)
	}
	bad := CheckHealth(context.Background(), "redis", pingFunc(func(context.Context) error { return errors.New("refused") }))
	if bad.Healthy || bad.Error != "refused" {
		t.Fatalf("status = %+v", bad)
	}
	if got := GetHealthStatus(); got.Store != "redis" || got.Healthy {
		t.Fatalf("snapshot = %+v", got)
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := FixedClock(at).Now(); !got.Equal(at) {
		t.Fatalf("Now() = %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	if got := parseLevel("warn", zapcore.InfoLevel); got != zapcore.WarnLevel {
		t.Fatalf("parseLevel(warn) = %v", got)
	}
	if got := parseLevel("loud", zapcore.InfoLevel); got != zapcore.InfoLevel {
		t.Fatalf("parseLevel(loud) = %v", got)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	prod, err := newLogger(true, "error")
	if err != nil {
		t.Fatal(err)
	}
	if prod.Core().Enabled(zapcore.WarnLevel) || !prod.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("production logger should only enable error and above")
	}

	dev, err := newLogger(false, "")
	if err != nil {
		t.Fatal(err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Error("development logger should default to debug")
	}
}
