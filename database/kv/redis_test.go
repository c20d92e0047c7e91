package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisBackend(t *testing.T) {
	_, client := newMiniredisClient(t)
	b := NewRedisBackend(client, "test")
	t.Cleanup(func() { b.Close() })
	exerciseBackend(t, b)
}

func TestRedisClearLeavesOtherNamespaces(t *testing.T) {
	ctx := context.Background()
	mr, client := newMiniredisClient(t)
	defer client.Close()

	if err := mr.Set("other:bookings", "[]"); err != nil {
		t.Fatal(err)
	}
	b := NewRedisBackend(client, "almanack")
	if err := NewPort(b, nil).Set(ctx, "isLoggedIn", true); err != nil {
		t.Fatal(err)
	}
	if got, _ := mr.Get("almanack:isLoggedIn"); got != "true" {
		t.Fatalf("stored value = %q", got)
	}
	if err := b.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if mr.Exists("almanack:isLoggedIn") {
		t.Fatal("namespace key survived Clear")
	}
	if !mr.Exists("other:bookings") {
		t.Fatal("Clear removed a key from another namespace")
	}
}
