// Package decision composes curve geometry, rating and enforcement into the
// two operations a host needs while track is being placed: evaluating the
// tentative segment for display, and deciding whether a placement has to be
// rejected.
//
// Both operations are synchronous and side-effect free with respect to their
// results; calling them repeatedly with unchanged inputs yields identical
// output. Hosts call them at their own cadence, throttling is up to the
// presentation layer.
package decision

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trackcurve"
	"github.com/npillmayer/trackcurve/bezier"
	"github.com/npillmayer/trackcurve/enforce"
	"github.com/npillmayer/trackcurve/rating"
)

// tracer writes to trace with key 'enforcement'
func tracer() tracing.Trace {
	return tracing.Select("enforcement")
}

// EvaluationResult is the outcome of evaluating a tentative segment.
//
// If enforcement is not active, RequiredRadius is 0 and
// EnforcementSatisfied is true.
type EvaluationResult struct {
	Radius               float64 // minimum curvature radius, 0 for straight
	Slope                float64 // grade between the endpoints in percent
	Rating               rating.Rating
	Level                enforce.Level // level selected when evaluating
	EnforcementActive    bool
	EnforcementSatisfied bool
	RequiredRadius       float64
}

// IsStraight is a predicate: does the evaluated segment have no curvature?
func (r EvaluationResult) IsStraight() bool {
	return r.Radius <= 0
}

// Facade evaluates segments against the enforcement state of one session.
type Facade struct {
	session *enforce.Session
}

// NewFacade creates a facade for a session. A nil session is replaced by a
// fresh one at level Mainline.
func NewFacade(session *enforce.Session) *Facade {
	if session == nil {
		session = enforce.NewSession(enforce.Mainline)
	}
	return &Facade{session: session}
}

// Session returns the enforcement session of f.
func (f *Facade) Session() *enforce.Session {
	return f.session
}

// CurrentEnforcementLevel returns the level currently selected.
func (f *Facade) CurrentEnforcementLevel() enforce.Level {
	return f.session.Current()
}

// CycleEnforcementLevel steps the selected level and returns the new one.
func (f *Facade) CycleEnforcementLevel(dir enforce.Direction) enforce.Level {
	return f.session.Cycle(dir)
}

// Evaluate computes radius, slope and rating of a segment from end1 to end2.
// A nil curve denotes a straight segment. While the modifier is held,
// enforcement is active: the result carries the radius required by the
// selected level and whether the segment satisfies it. Straight segments
// always satisfy any requirement.
func (f *Facade) Evaluate(curve *bezier.Segment, end1, end2 trackcurve.Vec3,
	modifierHeld bool, th rating.Thresholds) EvaluationResult {
	//
	level := f.session.Current()
	radius := curve.MinimumRadius()
	res := EvaluationResult{
		Radius:               radius,
		Slope:                bezier.Slope(end1, end2),
		Rating:               th.Rate(radius),
		Level:                level,
		EnforcementSatisfied: true,
	}
	if modifierHeld {
		res.EnforcementActive = true
		res.RequiredRadius = enforce.RequiredRadius(level, th)
		res.EnforcementSatisfied = radius <= 0 || radius >= res.RequiredRadius
	}
	tracer().Debugf("evaluate: R=%.4g, slope=%.4g%%, %s, active=%v, ok=%v",
		res.Radius, res.Slope, res.Rating, res.EnforcementActive, res.EnforcementSatisfied)
	return res
}

// ShouldReject is the veto predicate for a placement: it holds iff the
// modifier is held and the segment is curved but tighter than required.
func ShouldReject(radius float64, modifierHeld bool, requiredRadius float64) bool {
	return modifierHeld && radius > 0 && radius < requiredRadius
}

// ShouldReject applies the veto predicate with the radius required by the
// selected level.
func (f *Facade) ShouldReject(radius float64, modifierHeld bool, th rating.Thresholds) bool {
	return ShouldReject(radius, modifierHeld, f.session.RequiredRadius(th))
}
