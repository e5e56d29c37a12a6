package decision

import (
	"fmt"
	"strings"

	"github.com/npillmayer/trackcurve"
	"github.com/npillmayer/trackcurve/bezier"
	"github.com/npillmayer/trackcurve/enforce"
	"github.com/npillmayer/trackcurve/rating"
)

// CurveSource is the host's view of the tentative placement. Hosts adapt
// their own placement state to this interface.
type CurveSource interface {
	// CandidateCurve returns the tentative segment. A nil segment with ok=true
	// denotes a straight placement; ok=false means nothing is being placed.
	CandidateCurve() (curve *bezier.Segment, ok bool)
	// Endpoints returns the two ends of the tentative segment.
	Endpoints() (end1, end2 trackcurve.Vec3, ok bool)
	IsValidPlacement() bool
	SetValidPlacement(valid bool)
}

// Signals is a snapshot of the input state relevant for enforcement.
type Signals struct {
	Alt    bool
	Ctrl   bool
	Scroll float64 // vertical scroll delta of the current event, 0 if none
}

// Binding selects the modifier combination which activates enforcement.
type Binding int8

const (
	AltOnly Binding = iota // Alt, regardless of Ctrl
	CtrlAlt                // Ctrl and Alt together
)

func (b Binding) String() string {
	switch b {
	case AltOnly:
		return "alt"
	case CtrlAlt:
		return "ctrl+alt"
	}
	return "<unknown>"
}

// ParseBinding reads a binding name ("alt" or "ctrl+alt", case-insensitive).
func ParseBinding(name string) (Binding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, " ", "")) {
	case "alt", "":
		return AltOnly, nil
	case "ctrl+alt", "alt+ctrl":
		return CtrlAlt, nil
	}
	return AltOnly, fmt.Errorf("unknown modifier binding %q", name)
}

// Policy decides whether enforcement is in effect for a given input state.
type Policy struct {
	Enabled bool
	Binding Binding
}

// DefaultPolicy is enforcement enabled, activated by Alt.
func DefaultPolicy() Policy {
	return Policy{Enabled: true, Binding: AltOnly}
}

// ModifierHeld is a predicate: is the enforcement modifier held, with
// enforcement enabled?
func (p Policy) ModifierHeld(sig Signals) bool {
	if !p.Enabled {
		return false
	}
	switch p.Binding {
	case CtrlAlt:
		return sig.Alt && sig.Ctrl
	default:
		return sig.Alt
	}
}

// Host binds a facade to a policy. It is the glue hosts call from their
// tick, commit and scroll handlers.
type Host struct {
	*Facade
	Policy Policy
}

// NewHost creates a host adapter over a facade. A nil facade gets a fresh
// session at Mainline.
func NewHost(f *Facade, policy Policy) *Host {
	if f == nil {
		f = NewFacade(nil)
	}
	return &Host{Facade: f, Policy: policy}
}

// Refresh evaluates the tentative placement of src. It returns false if
// nothing is being placed.
func (h *Host) Refresh(src CurveSource, sig Signals, th rating.Thresholds) (EvaluationResult, bool) {
	curve, ok := src.CandidateCurve()
	if !ok {
		return EvaluationResult{}, false
	}
	end1, end2, ok := src.Endpoints()
	if !ok {
		return EvaluationResult{}, false
	}
	return h.Evaluate(curve, end1, end2, h.Policy.ModifierHeld(sig), th), true
}

// Guard is called when the host is about to commit a placement. If the
// placement violates the selected enforcement level, it is marked invalid
// and Guard returns false. Placements already invalid are left alone.
func (h *Host) Guard(src CurveSource, sig Signals, th rating.Thresholds) bool {
	if !src.IsValidPlacement() {
		return false
	}
	held := h.Policy.ModifierHeld(sig)
	if !held {
		return true
	}
	curve, ok := src.CandidateCurve()
	if !ok || curve == nil {
		return true
	}
	radius := curve.MinimumRadius()
	if h.ShouldReject(radius, held, th) {
		tracer().P("session", h.Session().ID()).Infof("placement vetoed: R=%.1f < %.0f (%s)",
			radius, h.Session().RequiredRadius(th), h.CurrentEnforcementLevel())
		src.SetValidPlacement(false)
		return false
	}
	return true
}

// Scroll consumes a scroll event to cycle the enforcement level, but only
// while the modifier is held. It returns true if the event was consumed.
func (h *Host) Scroll(sig Signals) bool {
	if !h.Policy.ModifierHeld(sig) {
		return false
	}
	dir := enforce.DirectionForScroll(sig.Scroll)
	if dir == enforce.NoDirection {
		return false
	}
	h.CycleEnforcementLevel(dir)
	return true
}
