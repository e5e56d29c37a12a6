/*
Command trackcurve evaluates a single candidate track curve and prints a
status line the way a placement tool would display it:

	R: 45.0 [Yard] | 20.0% [Mainline R>=60]

Usage:

	trackcurve -p0 x,y,z -p1 x,y,z -p2 x,y,z -p3 x,y,z [-shortcut R]
	           [-config file.nt] [-modifier] [-level yard] [-hint]

Exit status is 0 if the placement would be accepted, 1 if it would be
vetoed, and 2 for usage or configuration errors.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/trackcurve"
	"github.com/npillmayer/trackcurve/bezier"
	"github.com/npillmayer/trackcurve/config"
	"github.com/npillmayer/trackcurve/decision"
	"github.com/npillmayer/trackcurve/enforce"
	"github.com/npillmayer/trackcurve/hint"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// point is a flag value "x,y,z".
type point struct {
	v   trackcurve.Vec3
	set bool
}

func (p *point) String() string {
	if p == nil || !p.set {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", p.v.X, p.v.Y, p.v.Z)
}

func (p *point) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected x,y,z, got %q", s)
	}
	var c [3]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("coordinate %q: %w", part, err)
		}
		c[i] = f
	}
	p.v, p.set = trackcurve.V3(c[0], c[1], c[2]), true
	return nil
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("trackcurve", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var cp [4]point
	var confPath string
	var shortcut float64
	var modifier bool
	var levelName string
	var withHint bool

	for i := range cp {
		fs.Var(&cp[i], fmt.Sprintf("p%d", i), fmt.Sprintf("Control point P%d as x,y,z", i))
	}
	fs.StringVar(&confPath, "config", "", "NestedText configuration file (default: standard locations)")
	fs.Float64Var(&shortcut, "shortcut", 0, "Known radius of a simple arc, skips sampling")
	fs.BoolVar(&modifier, "modifier", false, "Evaluate as if the enforcement modifier were held")
	fs.StringVar(&levelName, "level", "", "Enforcement level (mainline, yard, absolute)")
	fs.BoolVar(&withHint, "hint", false, "Search nearby end points meeting the enforcement level")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	for i := range cp {
		if !cp[i].set {
			fmt.Fprintf(errOut, "missing control point -p%d\n", i)
			fs.Usage()
			return 2
		}
	}

	conf, err := config.Open(confPath)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	config.SetupTracing(conf)
	settings, err := config.Load(conf)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	th := settings.Thresholds()

	session := enforce.NewSession(settings.EnforcementLevel)
	if levelName != "" {
		level, ok := enforce.ParseLevel(levelName)
		if !ok {
			fmt.Fprintf(errOut, "unknown enforcement level %q\n", levelName)
			return 2
		}
		session.Set(level)
	}
	host := decision.NewHost(decision.NewFacade(session), settings.Policy())
	sig := decision.Signals{Alt: modifier, Ctrl: modifier}

	seg := &bezier.Segment{
		Controls:       bezier.ControlPoints{cp[0].v, cp[1].v, cp[2].v, cp[3].v},
		ShortcutRadius: shortcut,
	}
	src := &candidate{curve: seg, valid: true}
	res, _ := host.Refresh(src, sig, th)
	fmt.Fprintln(out, Status(res, settings.Display))

	if withHint && res.EnforcementActive && !res.EnforcementSatisfied {
		printHint(out, seg, settings, res.RequiredRadius)
	}
	if !host.Guard(src, sig, th) {
		return 1
	}
	return 0
}

// printHint searches end points around P3 with the end tangent kept.
func printHint(out io.Writer, seg *bezier.Segment, settings config.Settings, required float64) {
	c := seg.Controls
	startDir, endDir := c[1].Sub(c[0]), c[3].Sub(c[2])
	prober := hint.ProberFunc(func(anchor trackcurve.Vec3) (*bezier.Segment, bool) {
		return &bezier.Segment{Controls: bezier.Hobby(c[0], startDir, anchor, endDir, 1)}, true
	})
	s := &hint.Searcher{Reach: settings.HintReach, Band: settings.HintBand}
	h := s.Search(c[3], required, prober)
	switch h.Kind {
	case hint.Target:
		for _, t := range h.Targets {
			fmt.Fprintf(out, "  end at %s gives R=%.1f\n", t.Anchor, t.Radius)
		}
	case hint.BestAvailable:
		fmt.Fprintf(out, "  widest nearby: end at %s gives R=%.1f\n", h.Best, h.BestRadius)
	default:
		fmt.Fprintln(out, "  no usable end point nearby")
	}
}

// candidate is the placement under evaluation.
type candidate struct {
	curve *bezier.Segment
	valid bool
}

func (c *candidate) CandidateCurve() (*bezier.Segment, bool) { return c.curve, true }
func (c *candidate) IsValidPlacement() bool                  { return c.valid }
func (c *candidate) SetValidPlacement(valid bool)            { c.valid = valid }

func (c *candidate) Endpoints() (trackcurve.Vec3, trackcurve.Vec3, bool) {
	return c.curve.Controls[0], c.curve.Controls[3], true
}
