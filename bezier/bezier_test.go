package bezier

import (
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trackcurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var v3 = trackcurve.V3

func sCurve() ControlPoints {
	return ControlPoints{v3(0, 0, 0), v3(10, 0, 0), v3(10, 0, 10), v3(20, 0, 10)}
}

func TestCoincidentControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := v3(3, 64, -2)
	cp := ControlPoints{p, p, p, p}
	assert.Equal(t, 0.0, MinimumRadius(cp, 0))
	assert.Equal(t, 0.0, cp.Curvature(0.5))
}

func TestStraightSegmentHasNoRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := Straight(v3(0, 64, 0), v3(30, 70, 0))
	assert.Equal(t, 0.0, MinimumRadius(cp, 0))
	cp = ControlPoints{v3(0, 0, 0), v3(0, 0, 0), v3(20, 0, 0), v3(30, 0, 0)}
	assert.Equal(t, 0.0, MinimumRadius(cp, 0))
}

func TestNonFiniteControlPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := sCurve()
	cp[2] = v3(math.NaN(), 0, 0)
	assert.Equal(t, 0.0, MinimumRadius(cp, 0))
	cp[2] = v3(math.Inf(1), 0, 0)
	assert.Equal(t, 0.0, MinimumRadius(cp, math.NaN()))
}

func TestShortcutRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := sCurve()
	assert.Equal(t, 33.0, MinimumRadius(cp, 33))
	sampled := MinimumRadius(cp, 0)
	assert.Equal(t, sampled, MinimumRadius(cp, -1))
	assert.Equal(t, sampled, MinimumRadius(cp, math.NaN()))
	assert.Equal(t, sampled, MinimumRadius(cp, math.Inf(1)))
	var seg *Segment
	assert.Equal(t, 0.0, seg.MinimumRadius())
	seg = &Segment{Controls: cp, ShortcutRadius: 12}
	assert.Equal(t, 12.0, seg.MinimumRadius())
}

func TestCircularArcRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, sweep := range []float64{30, 45, 60, 90, -90} {
		for _, R := range []float64{7, 20, 45, 60, 250} {
			cp := Arc(trackcurve.P(-4, 11), R, 0.3, sweep*trackcurve.Deg2Rad, 64)
			r := MinimumRadius(cp, 0)
			assert.InEpsilon(t, R, r, 0.02, "arc of radius %g, sweep %g: got %g", R, sweep, r)
			assert.LessOrEqual(t, r, R*1.0001)
		}
	}
}

func TestArcEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := Arc(trackcurve.Origin, 10, 0, math.Pi/2, 64)
	assert.InDelta(t, 10.0, cp[0].X, 1e-9)
	assert.InDelta(t, 0.0, cp[0].Z, 1e-9)
	assert.InDelta(t, 0.0, cp[3].X, 1e-9)
	assert.InDelta(t, 10.0, cp[3].Z, 1e-9)
	mid := cp.Point(0.5)
	assert.InDelta(t, 10.0, mid.Plan().Abs(), 1e-9)
	assert.Equal(t, 64.0, mid.Y)
}

func TestSCurveRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := sCurve()
	r := MinimumRadius(cp, 0)
	assert.InDelta(t, 10.4624, r, 0.001)
	// the inflection point in the middle is straight
	assert.Equal(t, 0.0, cp.RadiusAt(0.5))
}

func TestFinerSamplingNeverWidens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curves := []ControlPoints{
		sCurve(),
		Arc(trackcurve.P(5, 5), 30, 1, 1.2, 70),
		{v3(0, 64, 0), v3(3, 64, 8), v3(20, 66, -4), v3(25, 68, 9)},
	}
	for _, cp := range curves {
		coarse := MinimumRadiusSampled(cp, 0, DefaultSamples)
		fine := MinimumRadiusSampled(cp, 0, 10*DefaultSamples)
		assert.LessOrEqual(t, fine, coarse)
		assert.Equal(t, coarse, MinimumRadius(cp, 0))
	}
	assert.Equal(t, MinimumRadiusSampled(sCurve(), 0, 2), MinimumRadiusSampled(sCurve(), 0, -5))
}

func TestRepeatedEvaluationIsIdentical(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := ControlPoints{v3(0, 64, 0), v3(3, 64, 8), v3(20, 66, -4), v3(25, 68, 9)}
	r := MinimumRadius(cp, 0)
	for i := 0; i < 10; i++ {
		require.Equal(t, r, MinimumRadius(cp, 0))
	}
}

func TestDerivatives(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := sCurve()
	assert.Equal(t, cp[1].Sub(cp[0]).Scale(3), cp.Derivative(0))
	assert.Equal(t, cp[3].Sub(cp[2]).Scale(3), cp.Derivative(1))
	assert.Equal(t, cp[0], cp.Point(0))
	assert.Equal(t, cp[3], cp.Point(1))
	h := 1e-6
	for _, tt := range []float64{0.2, 0.5, 0.8} {
		num := cp.Point(tt + h).Sub(cp.Point(tt - h)).Scale(1 / (2 * h))
		assert.InDelta(t, 0.0, num.Sub(cp.Derivative(tt)).Length(), 1e-4)
		num = cp.Derivative(tt + h).Sub(cp.Derivative(tt - h)).Scale(1 / (2 * h))
		assert.InDelta(t, 0.0, num.Sub(cp.SecondDerivative(tt)).Length(), 1e-4)
	}
}

func TestSlope(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 10.0, HorizontalDistance(v3(0, 64, 0), v3(10, 66, 0)))
	assert.InDelta(t, 20.0, Slope(v3(0, 64, 0), v3(10, 66, 0)), 1e-12)
	assert.InDelta(t, -20.0, Slope(v3(10, 66, 0), v3(0, 64, 0)), 1e-12)
	assert.Equal(t, 0.0, Slope(v3(0, 64, 0), v3(0, 70, 0)))
	assert.Equal(t, 0.0, Slope(v3(0, 64, 0), v3(0.0005, 70, 0)))
	assert.InDelta(t, 5.0, Slope(v3(0, 64, 0), v3(30, 66.5, 40)), 1e-12)
	assert.Equal(t, 0.0, Slope(v3(0, 64, 0), v3(math.NaN(), 70, 1)))
}

func TestFromAxes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := FromAxes(v3(0, 64, 0), v3(10, 64, 10), v3(2, 0, 0), v3(0, 0, -5), 5.5228)
	assert.Equal(t, v3(5.5228, 64, 0), cp[1])
	assert.Equal(t, v3(10, 64, 10-5.5228), cp[2])
	assert.InEpsilon(t, 10.0, MinimumRadius(cp, 0), 0.02)
	cp = FromAxes(v3(0, 64, 0), v3(10, 64, 10), trackcurve.Vec3{}, trackcurve.Vec3{}, 3)
	assert.Equal(t, cp[0], cp[1])
	assert.Equal(t, cp[3], cp[2])
}

func TestHobbyQuarterCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	R := 40.0
	cp := Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(R, 64, R), v3(0, 0, 1), 1)
	assert.InDelta(t, 0.5523*R, cp[1].X, 0.01)
	assert.InDelta(t, 0.0, cp[1].Z, 1e-9)
	assert.InDelta(t, R, cp[2].X, 1e-9)
	assert.InDelta(t, 0.4477*R, cp[2].Z, 0.01)
	assert.InEpsilon(t, R, MinimumRadius(cp, 0), 0.02)
}

func TestHobbyTensionTightens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	loose := Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(30, 64, 30), v3(0, 0, 1), 1)
	tense := Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(30, 64, 30), v3(0, 0, 1), 3)
	assert.Less(t, tense[1].X, loose[1].X)
	assert.Equal(t, Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(30, 64, 30), v3(0, 0, 1), 100),
		Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(30, 64, 30), v3(0, 0, 1), 4))
}

func TestHobbyDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(30, 64, 0), v3(1, 0, 0), 1)
	assert.Equal(t, 0.0, MinimumRadius(cp, 0), "aligned directions give a straight")
	cp = Hobby(v3(0, 64, 0), v3(1, 0, 0), v3(0, 70, 0), v3(0, 0, 1), 1)
	assert.Equal(t, Straight(v3(0, 64, 0), v3(0, 70, 0)), cp)
	cp = Hobby(v3(0, 64, 0), v3(0, 1, 0), v3(10, 64, 10), v3(0, 0, 1), 1)
	assert.Equal(t, 0.0, MinimumRadius(cp, 0))
}

func TestHobbyElevation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := Hobby(v3(0, 60, 0), v3(1, 0, 0), v3(20, 66, 20), v3(0, 0, 1), 1)
	assert.Equal(t, 62.0, cp[1].Y)
	assert.Equal(t, 64.0, cp[2].Y)
	assert.InDelta(t, 21.2132, Slope(cp[0], cp[3]), 1e-3)
}

func ExampleMinimumRadius() {
	cp := Arc(trackcurve.Origin, 45, 0, math.Pi/4, 64)
	fmt.Printf("R = %.1f\n", MinimumRadius(cp, 0))
	fmt.Printf("slope = %.1f%%\n", Slope(trackcurve.V3(0, 64, 0), trackcurve.V3(10, 66, 0)))
	// Output:
	// R = 45.0
	// slope = 20.0%
}
