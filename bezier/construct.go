package bezier

import (
	"math"

	"github.com/npillmayer/trackcurve"
)

// Straight returns the control points of a straight segment from start to end.
// Its curvature vanishes everywhere.
func Straight(start, end trackcurve.Vec3) ControlPoints {
	d := end.Sub(start)
	return ControlPoints{start, start.Add(d.Scale(1.0 / 3)), start.Add(d.Scale(2.0 / 3)), end}
}

// FromAxes builds control points the way track connections are usually
// stored: two endpoints, an axis per endpoint and a common handle length.
// The start axis points from start into the curve, the end axis points from
// end into the curve.
//
//	P1 = start + |startAxis|·h,   P2 = end + |endAxis|·h
//
// Zero axes leave the corresponding handle on its endpoint.
func FromAxes(start, end, startAxis, endAxis trackcurve.Vec3, handleLength float64) ControlPoints {
	return ControlPoints{
		start,
		start.Add(startAxis.Normalized().Scale(handleLength)),
		end.Add(endAxis.Normalized().Scale(handleLength)),
		end,
	}
}

// Arc approximates a horizontal circular arc at height y. The arc starts at
// angle startAngle (radians, in plan view around center) and sweeps
// counter-clockwise for positive sweeps. Handles have length
//
//	4/3 · tan(sweep/4) · radius
//
// which is exact at the endpoints and the mid-point of the arc.
func Arc(center trackcurve.Pair, radius, startAngle, sweep, y float64) ControlPoints {
	k := 4.0 / 3.0 * math.Tan(sweep/4) * radius
	r := trackcurve.P(radius, 0)
	z0 := r.Rotated(startAngle).Shifted(center)
	z3 := r.Rotated(startAngle + sweep).Shifted(center)
	t0 := trackcurve.P(k, 0).Rotated(startAngle + math.Pi/2)
	t3 := trackcurve.P(k, 0).Rotated(startAngle + sweep + math.Pi/2)
	return ControlPoints{
		trackcurve.V3FromPlan(z0, y),
		trackcurve.V3FromPlan(z0+t0, y),
		trackcurve.V3FromPlan(z3-t3, y),
		trackcurve.V3FromPlan(z3, y),
	}
}
