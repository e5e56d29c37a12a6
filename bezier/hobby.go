package bezier

import (
	"math"

	"github.com/npillmayer/trackcurve"
)

// Hobby finds control points for a smooth track segment between two directed
// knots, using Hobby's formula for the special case of a path with exactly
// two knots and explicit directions at both of them (in MetaFont notation
// z0{startDir} .. tension τ .. {endDir}z1).
//
// The curve is determined in plan view. Elevation is interpolated linearly
// between start and end, which keeps the grade constant along the segment.
// Tension is adapted to lie between 3/4 and 4; a tension of 1 yields the
// well-known circle approximation for symmetric 90° turns.
//
// endDir is the direction of travel when arriving at end. If the knots
// coincide in plan view or a direction is missing, a straight segment is
// returned.
func Hobby(start, startDir, end, endDir trackcurve.Vec3, tension float64) ControlPoints {
	z0, z1 := start.Plan(), end.Plan()
	dvec := z1 - z0
	if dvec.Abs() <= Epsilon || startDir.Plan().Abs() <= Epsilon || endDir.Plan().Abs() <= Epsilon {
		tracer().Debugf("hobby: degenerate knots %v, %v; using straight segment", start, end)
		return Straight(start, end)
	}
	a := recip(clampTension(tension))
	theta := reduceAngle(startDir.Plan().Angle() - dvec.Angle())
	phi := -reduceAngle(endDir.Plan().Angle() - dvec.Angle())
	tracer().Debugf("hobby: theta = %.4g, phi = %.4g", rad2deg(theta), rad2deg(phi))
	p2, p3 := controlOffsets(phi, theta, a, a, dvec)
	dy := end.Y - start.Y
	return ControlPoints{
		start,
		trackcurve.V3FromPlan(z0+p2, start.Y+dy/3),
		trackcurve.V3FromPlan(z1-p3, start.Y+2*dy/3),
		end,
	}
}

func hobbyParamsAlphaBeta(theta, phi float64) (float64, float64) {
	constA := 1.41421356     // sqrt(2) -- empiric constants, as explained by J.Hobby
	constB := 0.0625         // 1/16
	constC := 0.38196601125  // (3 - sqrt(5)) / 2
	constCC := 0.61803398875 // 1 - c
	st, ct := math.Sin(theta), math.Cos(theta) // out-angle at z0
	sf, cf := math.Sin(phi), math.Cos(phi)     // in-angle at z1
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	beta := 1 + constCC*ct + constC*cf
	return alpha, beta
}

// Offsets of the post-control of z0 and the pre-control of z1, relative to
// their knots. a and b are the reciprocal tensions.
func controlOffsets(phi, theta, a, b float64, dvec trackcurve.Pair) (trackcurve.Pair, trackcurve.Pair) {
	alpha, beta := hobbyParamsAlphaBeta(theta, phi)
	rho := (2 + alpha) / beta
	sigma := (2 - alpha) / beta
	uv1 := dvec.Rotated(theta)
	uv2 := dvec.Rotated(-phi)
	return uv1.Scaled(a / 3 * rho), uv2.Scaled(b / 3 * sigma)
}

func clampTension(t float64) float64 {
	t = math.Abs(t)
	if math.IsNaN(t) || t < 0.75 {
		return 0.75
	} else if t > 4.0 {
		return 4.0
	}
	return t
}

// Reduce an angle to fit into -pi .. pi.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

// Return 1/a for a.
func recip(a float64) float64 {
	if math.IsNaN(a) {
		return 1.0
	}
	return 1.0 / a
}

func rad2deg(a float64) float64 {
	return a * 180 / math.Pi
}
