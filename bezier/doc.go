// Package bezier evaluates the geometry of cubic Bézier track segments.
/*

A track segment under placement is described by four control points
P0…P3 in world space. The host's own radius information only models simple
circular arcs; S-shaped and compound curves have a non-constant curvature
profile. The tightest point of such a curve determines whether it is
drivable, so we sample the parametric curvature

	κ(t) = |B'(t) × B''(t)| / |B'(t)|³

at interior parameter values and report the smallest finite radius 1/κ.
This is an approximation: more samples trade time for a marginally tighter
minimum. A radius of 0 means "no curvature", i.e. the segment is straight
or numerically degenerate. Functions of this package never fail; they
degrade to 0 instead.

Besides evaluation, the package constructs control points the ways a host
typically does: from endpoints, axes and a handle length (FromAxes), as a
circular arc (Arc), or by John Hobby's spline interpolation between two
directed knots (Hobby). For the latter see

   Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
   Computer Science Dept. Stanford University
   Report No. STAN-CS-85-1047, Jan 1985


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}
