package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// BadgerBackend stores entries in an embedded Badger database on local disk.
// Keys are written as "<namespace>:<key>".
type BadgerBackend struct {
	db     *badger.DB
	prefix []byte
	owned  bool
}

// OpenBadger opens (or creates) the Badger database in dir. The returned
// backend closes the database on Close.
func OpenBadger(dir, namespace string, logger *zap.Logger) (*BadgerBackend, error) {
	if err := ValidateNamespace(namespace); err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(dir).WithLogger(newBadgerLogger(logger))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	b := NewBadgerBackend(db, namespace)
	b.owned = true
	return b, nil
}

// NewBadgerBackend scopes an already open database to namespace. Close does
// not close db.
func NewBadgerBackend(db *badger.DB, namespace string) *BadgerBackend {
	return &BadgerBackend{db: db, prefix: []byte(namespace + ":")}
}

func (b *BadgerBackend) key(k string) []byte {
	return append(append([]byte(nil), b.prefix...), k...)
}

func (b *BadgerBackend) Read(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

func (b *BadgerBackend) Write(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key(key), value)
	})
}

func (b *BadgerBackend) Delete(_ context.Context, keys ...string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete(b.key(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *BadgerBackend) Clear(context.Context) error {
	return b.db.DropPrefix(b.prefix)
}

func (b *BadgerBackend) Ping(context.Context) error {
	if b.db.IsClosed() {
		return errors.New("badger: database is closed")
	}
	return nil
}

func (b *BadgerBackend) Close() error {
	if !b.owned {
		return nil
	}
	return b.db.Close()
}

// badgerLogger routes Badger's internal logging through zap.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func newBadgerLogger(logger *zap.Logger) badger.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return badgerLogger{s: logger.Named("badger").Sugar()}
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { l.s.Errorf(f, v...) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { l.s.Warnf(f, v...) }
func (l badgerLogger) Infof(f string, v ...interface{})    { l.s.Debugf(f, v...) }
func (l badgerLogger) Debugf(f string, v ...interface{})   { l.s.Debugf(f, v...) }
