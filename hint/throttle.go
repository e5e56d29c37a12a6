package hint

import (
	"sync"
	"time"
)

// DefaultInterval is the minimum time between two searches.
const DefaultInterval = 100 * time.Millisecond

// Throttle limits how often a search is run. The zero value uses
// DefaultInterval and the wall clock.
type Throttle struct {
	Interval time.Duration
	Now      func() time.Time
	mx       sync.Mutex
	last     time.Time
}

// Allow reports whether a search may run now. If it returns true, the
// current time is remembered as the time of the last search.
func (t *Throttle) Allow() bool {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	interval := t.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	n := now()
	if !t.last.IsZero() && n.Sub(t.last) < interval {
		return false
	}
	t.last = n
	return true
}

// Reset forgets the last search, so the next call to Allow succeeds.
func (t *Throttle) Reset() {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.last = time.Time{}
}
