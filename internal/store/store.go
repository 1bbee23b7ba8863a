package store

import (
	"sync"
	"time"

	"dispatch-report/internal/report"

	"github.com/google/uuid"
)

// Entry is one stored report.
type Entry struct {
	ID        string
	Filename  string
	Sheets    []report.SheetInfo
	Data      []byte
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store keeps built reports in memory so they can be downloaded after the
// build call that produced them, the same way a UI keeps the last result
// around for its download button. Process-local only; entries expire after
// the configured TTL and are purged lazily on the next Put.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// New creates a store. maxEntries <= 0 means unbounded.
func New(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		entries: map[string]*Entry{},
		ttl:     ttl,
		max:     maxEntries,
		now:     time.Now,
	}
}

// Put stores a built report under a fresh id and returns the entry.
func (s *Store) Put(filename string, sheets []report.SheetInfo, data []byte) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)
	for s.max > 0 && len(s.entries) >= s.max {
		s.evictOldestLocked()
	}

	e := &Entry{
		ID:        uuid.NewString(),
		Filename:  filename,
		Sheets:    sheets,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.entries[e.ID] = e
	return e
}

// Get returns a stored report, or false when the id is unknown or expired.
func (s *Store) Get(id string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || s.now().After(e.ExpiresAt) {
		return nil, false
	}
	return e, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) purgeLocked(now time.Time) {
	for id, e := range s.entries {
		if now.After(e.ExpiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) evictOldestLocked() {
	var oldest *Entry
	for _, e := range s.entries {
		if oldest == nil || e.CreatedAt.Before(oldest.CreatedAt) {
			oldest = e
		}
	}
	if oldest != nil {
		delete(s.entries, oldest.ID)
	}
}
