// Package cache holds completed analyses in memory for a short time so
// repeated queries for the same handle do not re-hit the GitHub API.
package cache

import (
	"sync"
	"time"

	"github-profile-analyzer/internal/profile"
)

type entry struct {
	analysis  *profile.Analysis
	createdAt time.Time
}

// Store is a TTL-bounded in-memory cache keyed by canonical handle.
// Safe for concurrent use. Expired entries are treated as absent and
// removed lazily on read.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New returns an empty Store whose entries expire after ttl.
func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached analysis for handle, if present and unexpired.
func (s *Store) Get(handle string) (*profile.Analysis, bool) {
	s.mu.RLock()
	e, ok := s.entries[handle]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.createdAt) >= s.ttl {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if cur, ok := s.entries[handle]; ok && s.now().Sub(cur.createdAt) >= s.ttl {
			delete(s.entries, handle)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.analysis, true
}

// Set stores an analysis under handle, replacing any previous entry.
func (s *Store) Set(handle string, a *profile.Analysis) {
	s.mu.Lock()
	s.entries[handle] = entry{analysis: a, createdAt: s.now()}
	s.mu.Unlock()
}

// Clear removes every entry and reports how many were removed.
func (s *Store) Clear() int {
	s.mu.Lock()
	n := len(s.entries)
	s.entries = make(map[string]entry)
	s.mu.Unlock()
	return n
}

// Stats reports how many entries are still valid and how many exist in
// total, expired included.
func (s *Store) Stats() (valid, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	for _, e := range s.entries {
		if now.Sub(e.createdAt) < s.ttl {
			valid++
		}
	}
	return valid, len(s.entries)
}
