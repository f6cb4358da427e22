package ghfetch

import (
	"sync"
	"time"

	"github.com/google/go-github/v68/github"

	"github-profile-analyzer/internal/profile"
)

// rateLimitMirror is a read-only reflection of the quota GitHub reported
// on the most recent response. Guarded because fetches update it from
// several goroutines.
type rateLimitMirror struct {
	mu        sync.RWMutex
	remaining int
	limit     int
	reset     time.Time
	hasToken  bool
	updated   bool
}

func (m *rateLimitMirror) update(r github.Rate) {
	if r.Limit == 0 && r.Remaining == 0 && r.Reset.Time.IsZero() {
		return
	}
	m.mu.Lock()
	m.remaining = r.Remaining
	m.limit = r.Limit
	m.reset = r.Reset.Time
	m.updated = true
	m.mu.Unlock()
}

// exhausted reports whether the mirror shows zero remaining quota inside
// the current reset window.
func (m *rateLimitMirror) exhausted(now time.Time) (bool, time.Time) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.updated && m.remaining == 0 && now.Before(m.reset) {
		return true, m.reset
	}
	return false, time.Time{}
}

func (m *rateLimitMirror) status() profile.RateLimitStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st := profile.RateLimitStatus{HasToken: m.hasToken}
	if m.updated {
		remaining, limit, reset := m.remaining, m.limit, m.reset
		st.Remaining = &remaining
		st.Limit = &limit
		st.ResetAt = &reset
	}
	return st
}
