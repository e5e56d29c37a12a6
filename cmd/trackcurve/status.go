package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/trackcurve/config"
	"github.com/npillmayer/trackcurve/decision"
	"github.com/npillmayer/trackcurve/rating"
)

// Status renders an evaluation as a single status line. Parts switched off
// in the display settings are left out; radius and rating are shown for
// curved track only, slope only if it is noticeable.
func Status(res decision.EvaluationResult, display config.Display) string {
	var b strings.Builder
	curved := res.Radius > 0
	if display.ShowRadius && curved {
		if display.ShowDecimalPlaces {
			fmt.Fprintf(&b, "R: %.1f", res.Radius)
		} else {
			fmt.Fprintf(&b, "R: %d", int64(math.Round(res.Radius)))
		}
	}
	if display.ShowRating && curved {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "[%s]", res.Rating)
	}
	if display.ShowSlope && rating.ShowsGrade(res.Slope) {
		if b.Len() > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%.1f%%", res.Slope)
	}
	if res.EnforcementActive {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		switch {
		case !curved:
			fmt.Fprintf(&b, "[%s - Scroll]", res.Level)
		case res.EnforcementSatisfied:
			fmt.Fprintf(&b, "[%s OK]", res.Level)
		default:
			fmt.Fprintf(&b, "[%s R>=%.0f]", res.Level, res.RequiredRadius)
		}
	}
	return b.String()
}
