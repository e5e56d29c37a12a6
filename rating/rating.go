// Package rating classifies curvature radii and grades against
// design-standard thresholds.
package rating

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rating'
func tracer() tracing.Trace {
	return tracing.Select("rating")
}

// Rating is the design tier a curvature radius falls into. Ratings are
// ordered by decreasing permissiveness.
type Rating int8

// Ratings, from most to least permissive.
const (
	Mainline Rating = iota
	Yard
	TooTight
	Invalid
)

func (r Rating) String() string {
	switch r {
	case Mainline:
		return "Mainline"
	case Yard:
		return "Yard"
	case TooTight:
		return "Too Tight"
	case Invalid:
		return "Invalid"
	}
	return "<unknown>"
}

// Color is the RGB color hosts conventionally use for a rating.
func (r Rating) Color() int {
	switch r {
	case Mainline:
		return 0x00FF00
	case Yard:
		return 0xFFFF00
	case TooTight:
		return 0xFF6600
	}
	return 0xFF0000
}

// Thresholds are the minimum radii of the design tiers. Callers are
// expected to provide Mainline > Yard > Absolute > 0; this package does not
// check.
type Thresholds struct {
	Mainline float64
	Yard     float64
	Absolute float64
}

// DefaultThresholds returns the usual tiers in blocks: 60 for mainline
// operation, 20 for yards and 7 as the absolute minimum for 90° turns.
func DefaultThresholds() Thresholds {
	return Thresholds{Mainline: 60, Yard: 20, Absolute: 7}
}

// Rate classifies radius against th.
func (th Thresholds) Rate(radius float64) Rating {
	return Rate(radius, th.Mainline, th.Yard, th.Absolute)
}

// Rate maps a radius to a rating. Boundary values belong to the more
// permissive tier. Radii ≤ 0 (straight or undefined) and NaN are Invalid.
func Rate(radius, mainlineMin, yardMin, absoluteMin float64) Rating {
	if math.IsNaN(radius) || radius <= 0 {
		return Invalid
	}
	var r Rating
	switch {
	case radius >= mainlineMin:
		r = Mainline
	case radius >= yardMin:
		r = Yard
	case radius >= absoluteMin:
		r = TooTight
	default:
		r = Invalid
	}
	tracer().Debugf("rate(%.4g) = %s", radius, r)
	return r
}
