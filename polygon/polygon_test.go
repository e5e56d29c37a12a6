package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trackcurve"
	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(trackcurve.P(0, 0)).Knot(trackcurve.P(1, 3)).Knot(trackcurve.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(trackcurve.P(0, 5), trackcurve.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.True(t, box.Contains(trackcurve.P(2, 3)))
	assert.False(t, box.Contains(trackcurve.P(5, 3)))
	assert.False(t, box.Contains(trackcurve.P(2, 0)))
}

func TestDegenerateContourDropped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(trackcurve.P(0, 0)).Knot(trackcurve.P(1, 1)).Cycle()
	assert.True(t, pg.IsEmpty())
	assert.False(t, pg.Contains(trackcurve.P(0.5, 0.5)))
	assert.Equal(t, "<empty>", AsString(pg))
}

func TestSubtractMakesHole(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	outer := Box(trackcurve.P(-3.5, -3.5), trackcurve.P(3.5, 3.5))
	hole := Box(trackcurve.P(-0.5, -0.5), trackcurve.P(0.5, 0.5))
	region := outer.Subtract(hole)
	assert.False(t, region.Contains(trackcurve.P(0, 0)))
	assert.True(t, region.Contains(trackcurve.P(1, 0)))
	assert.True(t, region.Contains(trackcurve.P(-3, 3)))
	assert.False(t, region.Contains(trackcurve.P(4, 0)))
	// arguments unchanged
	assert.True(t, outer.Contains(trackcurve.P(0, 0)))
	assert.Equal(t, 4, outer.N())
}

func TestSubtractEdge(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	outer := Box(trackcurve.P(0, 0), trackcurve.P(10, 10))
	strip := Box(trackcurve.P(5, -1), trackcurve.P(11, 11))
	region := outer.Subtract(strip)
	assert.True(t, region.Contains(trackcurve.P(2, 5)))
	assert.False(t, region.Contains(trackcurve.P(7, 5)))
	assert.True(t, outer.Subtract(nil).Contains(trackcurve.P(7, 5)))
	assert.True(t, NullPolygon().Subtract(outer).IsEmpty())
}

func TestUnion(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Box(trackcurve.P(0, 0), trackcurve.P(2, 2))
	b := Box(trackcurve.P(5, 5), trackcurve.P(6, 6))
	u := a.Union(b)
	assert.True(t, u.Contains(trackcurve.P(1, 1)))
	assert.True(t, u.Contains(trackcurve.P(5.5, 5.5)))
	assert.False(t, u.Contains(trackcurve.P(3.5, 3.5)))
	assert.True(t, NullPolygon().Union(b).Contains(trackcurve.P(5.5, 5.5)))
}
