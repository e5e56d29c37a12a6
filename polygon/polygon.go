// Package polygon deals with plan-view polygons, such as the region around
// a cursor a placement hint may search, or footprints to be excluded from it.
//
// Polygons consist of one or more closed contours. Boolean operations are
// delegated to github.com/akavel/polyclip-go; containment follows the
// even-odd rule over all contours, so holes produced by a difference are
// honoured.
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trackcurve"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a plan-view polygon. To construct a polygon, start with
// NullPolygon() and add knots, closing each contour with Cycle().
type Polygon struct {
	poly polyclip.Polygon
	open polyclip.Contour // contour under construction
}

// NullPolygon creates an empty polygon, to be extended by builder calls.
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a rectangle spanned by two opposite corners.
func Box(p, q trackcurve.Pair) *Polygon {
	minx, maxx := order(p.X(), q.X())
	miny, maxy := order(p.Y(), q.Y())
	return NullPolygon().
		Knot(trackcurve.P(minx, miny)).
		Knot(trackcurve.P(maxx, miny)).
		Knot(trackcurve.P(maxx, maxy)).
		Knot(trackcurve.P(minx, maxy)).
		Cycle()
}

// Knot adds a knot to the contour under construction. Part of builder
// functionality.
func (pg *Polygon) Knot(p trackcurve.Pair) *Polygon {
	pg.open.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the contour under construction. Contours with fewer than
// three knots are dropped. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.open) >= 3 {
		pg.poly.Add(pg.open)
	} else if len(pg.open) > 0 {
		L().Errorf("dropping degenerate contour of %d knots", len(pg.open))
	}
	pg.open = nil
	return pg
}

// N returns the number of knots of all closed contours.
func (pg *Polygon) N() int {
	n := 0
	for _, c := range pg.poly {
		n += len(c)
	}
	return n
}

// Contours returns the number of closed contours.
func (pg *Polygon) Contours() int {
	return len(pg.poly)
}

// IsEmpty is a predicate: does the polygon cover no area at all?
func (pg *Polygon) IsEmpty() bool {
	return pg == nil || len(pg.poly) == 0
}

// Contains is a predicate: is p inside the polygon?
func (pg *Polygon) Contains(p trackcurve.Pair) bool {
	if pg.IsEmpty() {
		return false
	}
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	inside := false
	for _, c := range pg.poly {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

// Subtract returns a new polygon covering pg without other. Neither argument
// is changed.
func (pg *Polygon) Subtract(other *Polygon) *Polygon {
	if pg.IsEmpty() {
		return NullPolygon()
	}
	if other.IsEmpty() {
		return &Polygon{poly: clone(pg.poly)}
	}
	diff := pg.poly.Construct(polyclip.DIFFERENCE, other.poly)
	L().Debugf("difference has %d contours", len(diff))
	return &Polygon{poly: diff}
}

// Union returns a new polygon covering both pg and other.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	if pg.IsEmpty() {
		if other.IsEmpty() {
			return NullPolygon()
		}
		return &Polygon{poly: clone(other.poly)}
	}
	if other.IsEmpty() {
		return &Polygon{poly: clone(pg.poly)}
	}
	return &Polygon{poly: pg.poly.Construct(polyclip.UNION, other.poly)}
}

// AsString returns a polygon as a (debugging) string, one line per contour.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	if pg.IsEmpty() {
		return "<empty>"
	}
	var lines []string
	for _, c := range pg.poly {
		var b strings.Builder
		for _, pt := range c {
			b.WriteString(fmt.Sprintf("(%g,%g) -- ", pt.X, pt.Y))
		}
		b.WriteString("cycle")
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func order(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func clone(p polyclip.Polygon) polyclip.Polygon {
	c := make(polyclip.Polygon, len(p))
	for i, contour := range p {
		c[i] = append(polyclip.Contour(nil), contour...)
	}
	return c
}
