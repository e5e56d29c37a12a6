package enforce

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/npillmayer/trackcurve/rating"
)

// Session is the enforcement state of one interactive placement session.
// The selected level is stored as a single atomic value, so concurrent
// readers never see a partial update.
type Session struct {
	id    uuid.UUID
	level atomic.Int32
}

// NewSession creates a session with an initial level, usually the one
// configured as default.
func NewSession(initial Level) *Session {
	s := &Session{id: uuid.New()}
	s.level.Store(int32(initial.valid()))
	tracer().P("session", s.id).Debugf("new enforcement session at level %s", initial.valid())
	return s
}

// ID identifies the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the selected level.
func (s *Session) Current() Level {
	return Level(s.level.Load())
}

// Set selects a level explicitly.
func (s *Session) Set(level Level) {
	s.level.Store(int32(level.valid()))
}

// Cycle moves the selection one step in direction dir and returns the new
// level.
func (s *Session) Cycle(dir Direction) Level {
	for {
		old := Level(s.level.Load())
		next := old
		switch dir {
		case Forward:
			next = old.Next()
		case Backward:
			next = old.Previous()
		default:
			return old
		}
		if s.level.CompareAndSwap(int32(old), int32(next)) {
			tracer().P("session", s.id).Infof("enforcement level %s → %s", old, next)
			return next
		}
	}
}

// RequiredRadius is the minimum radius demanded by the selected level.
func (s *Session) RequiredRadius(th rating.Thresholds) float64 {
	return RequiredRadius(s.Current(), th)
}
