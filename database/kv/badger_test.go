package kv

import (
	"context"
	"errors"
	"testing"
)

func TestBadgerBackend(t *testing.T) {
	b, err := OpenBadger(t.TempDir(), "test", nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { b.Close() })
	exerciseBackend(t, b)
}

func TestBadgerSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := OpenBadger(dir, "app", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := NewPort(b, nil).Set(ctx, "isLoggedIn", true); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatal(err)
	}

	b, err = OpenBadger(dir, "app", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if !Load(ctx, NewPort(b, nil), "isLoggedIn", false) {
		t.Fatal("value lost across reopen")
	}
}

func TestBadgerNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	owner, err := OpenBadger(t.TempDir(), "one", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer owner.Close()
	other := NewBadgerBackend(owner.db, "two")

	p1, p2 := NewPort(owner, nil), NewPort(other, nil)
	if err := p1.Set(ctx, "k", 1); err != nil {
		t.Fatal(err)
	}
	if err := p2.Set(ctx, "k", 2); err != nil {
		t.Fatal(err)
	}
	if err := p2.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if got := Load(ctx, p1, "k", 0); got != 1 {
		t.Fatalf("namespace one lost its key: %d", got)
	}
	if got := Load(ctx, p2, "k", 0); got != 0 {
		t.Fatalf("namespace two not cleared: %d", got)
	}
	if err := other.Close(); err != nil {
		t.Fatal(err)
	}
	if err := owner.Ping(ctx); err != nil {
		t.Fatal("closing a borrowed backend closed the database")
	}
}

func TestBadgerClearKeepsPrefixSiblings(t *testing.T) {
	ctx := context.Background()
	if _, err := OpenBadger(t.TempDir(), "app:tenant2", nil); !errors.Is(err, ErrInvalidNamespace) {
		t.Fatalf("OpenBadger(app:tenant2) = %v, want ErrInvalidNamespace", err)
	}

	app, err := OpenBadger(t.TempDir(), "app", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	sibling := NewBadgerBackend(app.db, "app2")

	if err := NewPort(sibling, nil).Set(ctx, "k", 2); err != nil {
		t.Fatal(err)
	}
	if err := NewPort(app, nil).Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if got := Load(ctx, NewPort(sibling, nil), "k", 0); got != 2 {
		t.Fatalf("clearing app wiped app2: got %d", got)
	}
}
