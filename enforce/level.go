// Package enforce holds the minimum-radius policy a user selects while
// placing track.
//
// A Session remembers which of three enforcement levels is currently
// selected. The level cycles Mainline → Yard → Absolute → Mainline in
// response to discrete input (a scroll step) and maps to the minimum radius
// configured for that tier. Sessions are independent of each other and of
// the persisted configuration: changing the level mid-session never alters
// the configured default.
package enforce

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trackcurve/rating"
)

// tracer writes to trace with key 'enforcement'
func tracer() tracing.Trace {
	return tracing.Select("enforcement")
}

// Level is an enforcement tier.
type Level int32

// Enforcement levels in cycling order.
const (
	Mainline Level = iota
	Yard
	Absolute
	levelCount
)

func (l Level) String() string {
	switch l {
	case Mainline:
		return "Mainline"
	case Yard:
		return "Yard"
	case Absolute:
		return "Tight"
	}
	return "<unknown>"
}

// Next returns the level following l, wrapping around.
func (l Level) Next() Level {
	return (l.valid() + 1) % levelCount
}

// Previous returns the level preceding l, wrapping around.
func (l Level) Previous() Level {
	return (l.valid() - 1 + levelCount) % levelCount
}

func (l Level) valid() Level {
	if l < Mainline || l >= levelCount {
		return Mainline
	}
	return l
}

// ParseLevel interprets a configured level name (MAINLINE, YARD or
// ABSOLUTE, case-insensitive). Unknown names yield Mainline and ok=false.
func ParseLevel(name string) (level Level, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "MAINLINE":
		return Mainline, true
	case "YARD":
		return Yard, true
	case "ABSOLUTE":
		return Absolute, true
	}
	tracer().Infof("unknown enforcement level %q, using %s", name, Mainline)
	return Mainline, false
}

// RequiredRadius is the configured minimum radius for level.
func RequiredRadius(level Level, th rating.Thresholds) float64 {
	switch level {
	case Yard:
		return th.Yard
	case Absolute:
		return th.Absolute
	}
	return th.Mainline
}

// Direction is the sense of a cycling step.
type Direction int8

// Cycling directions. NoDirection leaves a level unchanged.
const (
	NoDirection Direction = iota
	Forward
	Backward
)

// DirectionForScroll maps a vertical scroll delta to a cycling direction:
// scrolling down moves forward, scrolling up moves backward.
func DirectionForScroll(delta float64) Direction {
	switch {
	case delta < 0:
		return Forward
	case delta > 0:
		return Backward
	}
	return NoDirection
}
