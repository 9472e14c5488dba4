// Package cache adapts the badger-backed CacheStorage to the narrow
// interface the acquisition Client expects, keeping the acquisition
// package itself storage-agnostic (spec.md §5).
package cache

import (
	badgercache "github.com/jusbr/leiimporter/internal/storage/badger"
)

// Store wraps a *badger.CacheStorage for use as an acquisition.Cache.
type Store struct {
	storage *badgercache.CacheStorage
}

// New wraps an existing CacheStorage.
func New(storage *badgercache.CacheStorage) *Store {
	return &Store{storage: storage}
}

// Get satisfies acquisition.Cache.
func (s *Store) Get(urn string) ([]byte, string, bool, error) {
	entry, ok, err := s.storage.Get(urn)
	if err != nil || !ok {
		return nil, "", false, err
	}
	return entry.Payload, entry.Kind, true, nil
}

// Put satisfies acquisition.Cache.
func (s *Store) Put(urn, kind string, payload []byte) error {
	return s.storage.Put(urn, kind, payload)
}
