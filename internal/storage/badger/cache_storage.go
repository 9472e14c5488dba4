package badger

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"
)

// CacheEntry is a single cached acquisition result, keyed by URN.
type CacheEntry struct {
	URN       string `boltholdKey:"URN"`
	Kind      string // "json" or "html", mirrors acquisition.Kind
	Payload   []byte
	FetchedAt time.Time
}

// CacheStorage is the URN-keyed acquisition cache (spec.md §5).
type CacheStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewCacheStorage creates a new CacheStorage instance.
func NewCacheStorage(db *BadgerDB, logger arbor.ILogger) *CacheStorage {
	return &CacheStorage{db: db, logger: logger}
}

// Get retrieves a cached entry by URN. The second return value is false
// when nothing is cached for that URN.
func (s *CacheStorage) Get(urn string) (*CacheEntry, bool, error) {
	var entry CacheEntry
	err := s.db.Store().Get(urn, &entry)
	if err == badgerhold.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cache entry: %w", err)
	}
	return &entry, true, nil
}

// Put writes through a fetched acquisition result. Writes are idempotent
// single-key overwrites, matching spec.md §5's write-then-rename posture
// at the storage layer.
func (s *CacheStorage) Put(urn, kind string, payload []byte) error {
	entry := CacheEntry{
		URN:       urn,
		Kind:      kind,
		Payload:   payload,
		FetchedAt: time.Now(),
	}
	if err := s.db.Store().Upsert(urn, &entry); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *CacheStorage) Close() error {
	return s.db.Close()
}
