package bezier

import (
	"fmt"
	"math"

	"github.com/npillmayer/trackcurve"
)

// Epsilon guards tangent lengths and curvatures: values below it count as 0.
const Epsilon = 0.0001

// DefaultSamples is the number of parameter intervals used for finding the
// minimum radius. Samples are taken at the interior points i/DefaultSamples.
const DefaultSamples = 20

// minHorizontal is the shortest horizontal span a slope is computed for.
const minHorizontal = 0.001

// ControlPoints are the four control points P0…P3 of a cubic Bézier segment.
type ControlPoints [4]trackcurve.Vec3

// Segment is a candidate track curve as delivered by a host. If the host
// already knows the curve to be a simple circular arc, it may set
// ShortcutRadius to that arc's radius. Values ≤ 0 mean "unknown".
type Segment struct {
	Controls       ControlPoints
	ShortcutRadius float64
}

// MinimumRadius returns the minimum curvature radius of a segment, or 0 for
// a nil segment.
func (seg *Segment) MinimumRadius() float64 {
	if seg == nil {
		return 0
	}
	return MinimumRadius(seg.Controls, seg.ShortcutRadius)
}

func (cp ControlPoints) String() string {
	return fmt.Sprintf("%v .. controls %v and %v .. %v", cp[0], cp[1], cp[2], cp[3])
}

// IsFinite is a predicate: are all control point coordinates finite?
func (cp ControlPoints) IsFinite() bool {
	for _, p := range cp {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// Point returns B(t).
func (cp ControlPoints) Point(t float64) trackcurve.Vec3 {
	mt := 1 - t
	return cp[0].Scale(mt * mt * mt).
		Add(cp[1].Scale(3 * mt * mt * t)).
		Add(cp[2].Scale(3 * mt * t * t)).
		Add(cp[3].Scale(t * t * t))
}

// Derivative returns
//
//	B'(t) = 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
func (cp ControlPoints) Derivative(t float64) trackcurve.Vec3 {
	mt := 1 - t
	return cp[1].Sub(cp[0]).Scale(3 * mt * mt).
		Add(cp[2].Sub(cp[1]).Scale(6 * mt * t)).
		Add(cp[3].Sub(cp[2]).Scale(3 * t * t))
}

// SecondDerivative returns
//
//	B''(t) = 6(1-t)(P0-2P1+P2) + 6t(P1-2P2+P3)
func (cp ControlPoints) SecondDerivative(t float64) trackcurve.Vec3 {
	mt := 1 - t
	a := cp[0].Sub(cp[1].Scale(2)).Add(cp[2])
	b := cp[1].Sub(cp[2].Scale(2)).Add(cp[3])
	return a.Scale(6 * mt).Add(b.Scale(6 * t))
}

// Curvature returns κ(t). Vanishing tangents and curvatures below Epsilon
// both count as straight, i.e. 0.
func (cp ControlPoints) Curvature(t float64) float64 {
	d1 := cp.Derivative(t)
	m := d1.Length()
	if m < Epsilon {
		return 0
	}
	k := d1.Cross(cp.SecondDerivative(t)).Length() / (m * m * m)
	if k < Epsilon || !trackcurve.IsFinite(k) {
		return 0
	}
	return k
}

// RadiusAt returns the curvature radius at t, or 0 where the curve is
// straight.
func (cp ControlPoints) RadiusAt(t float64) float64 {
	k := cp.Curvature(t)
	if k == 0 {
		return 0
	}
	return 1 / k
}

// MinimumRadius finds the minimum curvature radius of a Bézier segment.
// A positive shortcut radius is returned as is. Otherwise the curve is sampled
// at DefaultSamples-1 interior parameter values. If no sample yields a finite
// radius, the result is 0.
func MinimumRadius(cp ControlPoints, shortcut float64) float64 {
	return MinimumRadiusSampled(cp, shortcut, DefaultSamples)
}

// MinimumRadiusSampled is MinimumRadius with a custom number of parameter
// intervals. n < 2 is treated as 2.
func MinimumRadiusSampled(cp ControlPoints, shortcut float64, n int) float64 {
	if shortcut > 0 && trackcurve.IsFinite(shortcut) {
		return shortcut
	}
	if !cp.IsFinite() {
		tracer().Errorf("control points not finite: %v", cp)
		return 0
	}
	if n < 2 {
		n = 2
	}
	min := math.Inf(1)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		if r := cp.RadiusAt(t); r > 0 && r < min {
			min = r
		}
	}
	if math.IsInf(min, 1) {
		tracer().Debugf("no curvature found for %v", cp)
		return 0
	}
	tracer().Debugf("minimum radius = %.4g", min)
	return min
}

// HorizontalDistance is the plan-view distance between two points.
func HorizontalDistance(end1, end2 trackcurve.Vec3) float64 {
	return math.Hypot(end2.X-end1.X, end2.Z-end1.Z)
}

// Slope returns the grade between two endpoints as a signed percentage.
// Positive values ascend from end1 to end2. Vertical or degenerate spans
// have slope 0.
func Slope(end1, end2 trackcurve.Vec3) float64 {
	d := HorizontalDistance(end1, end2)
	if !(d >= minHorizontal) {
		return 0
	}
	s := 100 * (end2.Y - end1.Y) / d
	if !trackcurve.IsFinite(s) {
		return 0
	}
	return s
}
