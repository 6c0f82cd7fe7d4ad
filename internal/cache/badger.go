package cache

import (
	"errors"
	"fmt"

	"github.com/desertthunder/backstage/internal/shared"
	"github.com/dgraph-io/badger/v4"
)

// BadgerStore implements [Store] using BadgerDB.
//
// An empty path opens the database fully in memory, which is what tests and
// one-off CLI invocations use; a non-empty path gives durable storage across
// restarts.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a BadgerDB-backed store at the given path.
func NewBadgerStore(path string) (*BadgerStore, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or [shared.ErrCacheMiss] if absent.
func (s *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrCacheMiss, key)
		}
		if err != nil {
			return fmt.Errorf("failed to read key %s: %w", key, err)
		}

		value, err = item.ValueCopy(nil)
		return err
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key, overwriting any existing entry.
func (s *BadgerStore) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// GetByPrefix returns the values of every key under the given prefix.
func (s *BadgerStore) GetByPrefix(prefix string) ([][]byte, error) {
	var values [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("failed to copy value: %w", err)
			}
			values = append(values, value)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to iterate prefix %s: %w", prefix, err)
	}

	return values, nil
}
