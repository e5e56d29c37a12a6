/*
Package hint searches the neighbourhood of a placement anchor for
alternative anchors which would yield a curve of a desired radius.

Hosts use this to highlight nearby spots where the track would meet the
selected enforcement level. A Prober delivers the candidate curve for a
given anchor; the search rates every probe and collects those which fall
into a band just above the target radius. If none does, the search reports
the anchor with the widest curve instead.

Searches are comparatively expensive, as every probe builds a candidate
curve. Hosts should throttle them (see Throttle).
*/
package hint

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trackcurve"
	"github.com/npillmayer/trackcurve/bezier"
	"github.com/npillmayer/trackcurve/polygon"
)

// tracer writes to trace with key 'hint'
func tracer() tracing.Trace {
	return tracing.Select("hint")
}

// DefaultReach is the number of grid steps probed in every direction.
const DefaultReach = 3

// DefaultBand is the factor for the upper end of the target band.
const DefaultBand = 1.2

// Prober tries a placement with its anchor moved to a given position.
type Prober interface {
	// TryPlacement returns the candidate curve for anchor. A nil curve with
	// ok=true is a straight placement; ok=false rejects the anchor.
	TryPlacement(anchor trackcurve.Vec3) (curve *bezier.Segment, ok bool)
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(trackcurve.Vec3) (*bezier.Segment, bool)

// TryPlacement calls f(anchor).
func (f ProberFunc) TryPlacement(anchor trackcurve.Vec3) (*bezier.Segment, bool) {
	return f(anchor)
}

// Kind tells what a search has found.
type Kind int8

const (
	None          Kind = iota // no usable anchor nearby
	Target                    // anchors within the target band
	BestAvailable             // no anchor within the band, best one reported
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Target:
		return "target"
	case BestAvailable:
		return "best available"
	}
	return "<unknown>"
}

// Candidate is an anchor together with the minimum radius it would yield.
type Candidate struct {
	Anchor trackcurve.Vec3
	Radius float64
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s R=%.1f", c.Anchor, c.Radius)
}

// Hint is the result of a search.
type Hint struct {
	Kind       Kind
	Targets    []Candidate // ordered by ascending radius, for Kind Target
	Best       trackcurve.Vec3
	BestRadius float64
}

// Searcher probes integer plan offsets around an anchor.
//
// Reach is the number of grid steps in each direction, Band the factor for
// the upper end of the target band. Anchors inside Exclude (plan view,
// absolute coordinates) are never probed.
type Searcher struct {
	Reach   int
	Band    float64
	Exclude *polygon.Polygon
}

// NewSearcher creates a searcher with default reach and band.
func NewSearcher() *Searcher {
	return &Searcher{Reach: DefaultReach, Band: DefaultBand}
}

// Region returns the plan-view region probed around base.
func (s *Searcher) Region(base trackcurve.Vec3) *polygon.Polygon {
	reach := float64(s.reach()) + 0.5
	c := base.Plan()
	box := polygon.Box(c.Shifted(trackcurve.P(-reach, -reach)), c.Shifted(trackcurve.P(reach, reach)))
	return box.Subtract(s.Exclude)
}

// Search probes the neighbourhood of base. Anchors yielding a radius r with
// target ≤ r < target·Band are targets. The base anchor itself is skipped, as
// are rejected or straight placements.
func (s *Searcher) Search(base trackcurve.Vec3, target float64, prober Prober) Hint {
	reach := s.reach()
	band := s.Band
	if !(band >= 1) {
		band = DefaultBand
	}
	region := s.Region(base)
	targets := treemap.NewWith(utils.Float64Comparator)
	hint := Hint{Kind: None}
	probes := 0
	for dx := -reach; dx <= reach; dx++ {
		for dz := -reach; dz <= reach; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			anchor := base.Add(trackcurve.V3(float64(dx), 0, float64(dz)))
			if !region.Contains(anchor.Plan()) {
				continue
			}
			probes++
			curve, ok := prober.TryPlacement(anchor)
			if !ok || curve == nil {
				continue
			}
			r := curve.MinimumRadius()
			if r <= 0 {
				continue
			}
			if r >= target && r < target*band {
				var at []trackcurve.Vec3
				if v, found := targets.Get(r); found {
					at = v.([]trackcurve.Vec3)
				}
				targets.Put(r, append(at, anchor))
			}
			if r > hint.BestRadius {
				hint.Best, hint.BestRadius = anchor, r
			}
		}
	}
	if !targets.Empty() {
		hint.Kind = Target
		it := targets.Iterator()
		for it.Next() {
			r := it.Key().(float64)
			for _, a := range it.Value().([]trackcurve.Vec3) {
				hint.Targets = append(hint.Targets, Candidate{Anchor: a, Radius: r})
			}
		}
	} else if hint.BestRadius > 0 {
		hint.Kind = BestAvailable
	}
	tracer().Debugf("hint search around %s: %d probes, %s, %d targets, best R=%.1f",
		base, probes, hint.Kind, len(hint.Targets), hint.BestRadius)
	return hint
}

func (s *Searcher) reach() int {
	if s.Reach < 1 {
		return DefaultReach
	}
	return s.Reach
}
