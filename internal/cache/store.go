// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package cache

import (
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/resonantlabs/trackrec/internal/logging"
)

// Store is the badger-backed Result Cache. A nil *Store (or a *Store
// wrapping a nil db) behaves as an always-miss, always-no-op cache, so
// callers never need a separate "cache disabled" branch.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) a badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying badger database. Safe to call on a nil
// Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get reads and decodes the entry for key. Any failure — key absent, read
// error, unparsable value — is logged (except a plain miss) and reported
// as a miss; it never returns an error, per spec.md §4.7's "cache errors
// must never surface as request failures".
func (s *Store) Get(key string) (Entry, bool) {
	if s == nil || s.db == nil {
		return Entry{}, false
	}

	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("result cache read failed, treating as miss")
		}
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("result cache entry unparsable, treating as miss")
		return Entry{}, false
	}
	return entry, true
}

// Set writes entry under key with the given TTL. Failures are logged and
// otherwise ignored: a cache write is always best-effort.
func (s *Store) Set(key string, entry Entry, ttl time.Duration) {
	if s == nil || s.db == nil {
		return
	}

	data, err := json.Marshal(entry)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("result cache entry serialization failed, skipping write")
		return
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("result cache write failed")
	}
}

// Ping is a liveness probe for the health endpoint. It must not be called
// on the hot path of a recommend request.
func (s *Store) Ping() bool {
	if s == nil || s.db == nil {
		return false
	}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(livenessKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	return err == nil
}
