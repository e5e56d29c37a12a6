/*
Package config reads the settings of the curvature evaluator from an
application configuration.

Settings come from any schuko.Configuration. Values are read as strings
and validated here, so adapters differing in their typing (NestedText files
deliver strings only, test configurations deliver Go values) behave alike.
Missing keys take their defaults; malformed or out-of-range values are
errors.

Keys

	display.showCurvatureRadius    bool     true
	display.showSlope              bool     true
	display.showCurvatureRating    bool     true
	display.showDecimalPlaces      bool     true
	thresholds.mainlineMinRadius   float    60   [1,1000]
	thresholds.yardMinRadius       float    20   [1,1000]
	thresholds.absoluteMinRadius   float    7    [1,100]
	enforcement.enableEnforcement  bool     true
	enforcement.enforcementLevel   string   MAINLINE  (MAINLINE, YARD, ABSOLUTE)
	enforcement.modifier           string   alt       (alt, ctrl+alt)
	hint.reach                     int      3    [1,16]
	hint.band                      float    1.2  [1,4]

Thresholds must be strictly ordered: mainline > yard > absolute.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trackcurve/decision"
	"github.com/npillmayer/trackcurve/enforce"
	"github.com/npillmayer/trackcurve/rating"
)

// tracer writes to trace with key 'config'
func tracer() tracing.Trace {
	return tracing.Select("config")
}

// Errors returned by Load.
var (
	ErrMalformedValue = errors.New("malformed configuration value")
	ErrOutOfRange     = errors.New("configuration value out of range")
	ErrThresholdOrder = errors.New("thresholds not strictly ordered")
	ErrUnknownBinding = errors.New("unknown enforcement modifier")
)

// Display holds the presentation toggles.
type Display struct {
	ShowRadius        bool
	ShowSlope         bool
	ShowRating        bool
	ShowDecimalPlaces bool
}

// Settings is the complete, validated configuration.
type Settings struct {
	Display           Display
	MainlineMinRadius float64
	YardMinRadius     float64
	AbsoluteMinRadius float64
	EnableEnforcement bool
	EnforcementLevel  enforce.Level
	Modifier          decision.Binding
	HintReach         int
	HintBand          float64
}

// Defaults returns the settings used for keys not present in a configuration.
func Defaults() Settings {
	th := rating.DefaultThresholds()
	return Settings{
		Display:           Display{true, true, true, true},
		MainlineMinRadius: th.Mainline,
		YardMinRadius:     th.Yard,
		AbsoluteMinRadius: th.Absolute,
		EnableEnforcement: true,
		EnforcementLevel:  enforce.Mainline,
		Modifier:          decision.AltOnly,
		HintReach:         3,
		HintBand:          1.2,
	}
}

// Thresholds returns the rating thresholds of s.
func (s Settings) Thresholds() rating.Thresholds {
	return rating.Thresholds{
		Mainline: s.MainlineMinRadius,
		Yard:     s.YardMinRadius,
		Absolute: s.AbsoluteMinRadius,
	}
}

// Policy returns the enforcement policy of s.
func (s Settings) Policy() decision.Policy {
	return decision.Policy{Enabled: s.EnableEnforcement, Binding: s.Modifier}
}

// Load reads settings from conf. Errors wrap one of the Err… values of this
// package. Unknown enforcement levels are not an error; they select Mainline.
func Load(conf schuko.Configuration) (Settings, error) {
	s := Defaults()
	if conf == nil {
		return s, nil
	}
	r := reader{conf: conf}
	s.Display.ShowRadius = r.boolean("display.showCurvatureRadius", s.Display.ShowRadius)
	s.Display.ShowSlope = r.boolean("display.showSlope", s.Display.ShowSlope)
	s.Display.ShowRating = r.boolean("display.showCurvatureRating", s.Display.ShowRating)
	s.Display.ShowDecimalPlaces = r.boolean("display.showDecimalPlaces", s.Display.ShowDecimalPlaces)
	s.MainlineMinRadius = r.float("thresholds.mainlineMinRadius", s.MainlineMinRadius, 1, 1000)
	s.YardMinRadius = r.float("thresholds.yardMinRadius", s.YardMinRadius, 1, 1000)
	s.AbsoluteMinRadius = r.float("thresholds.absoluteMinRadius", s.AbsoluteMinRadius, 1, 100)
	s.EnableEnforcement = r.boolean("enforcement.enableEnforcement", s.EnableEnforcement)
	if name, ok := r.str("enforcement.enforcementLevel"); ok {
		level, known := enforce.ParseLevel(name)
		if !known {
			tracer().Infof("unknown enforcement level %q, using %s", name, level)
		}
		s.EnforcementLevel = level
	}
	if name, ok := r.str("enforcement.modifier"); ok && r.err == nil {
		b, err := decision.ParseBinding(name)
		if err != nil {
			r.err = fmt.Errorf("%w: %q", ErrUnknownBinding, name)
		}
		s.Modifier = b
	}
	s.HintReach = r.integer("hint.reach", s.HintReach, 1, 16)
	s.HintBand = r.float("hint.band", s.HintBand, 1, 4)
	if r.err != nil {
		return Defaults(), r.err
	}
	if !(s.MainlineMinRadius > s.YardMinRadius && s.YardMinRadius > s.AbsoluteMinRadius) {
		return Defaults(), fmt.Errorf("%w: mainline=%g, yard=%g, absolute=%g", ErrThresholdOrder,
			s.MainlineMinRadius, s.YardMinRadius, s.AbsoluteMinRadius)
	}
	tracer().Debugf("settings: thresholds %g/%g/%g, enforcement=%v at %s (%s)",
		s.MainlineMinRadius, s.YardMinRadius, s.AbsoluteMinRadius,
		s.EnableEnforcement, s.EnforcementLevel, s.Modifier)
	return s, nil
}

// reader collects the first error while reading keys.
type reader struct {
	conf schuko.Configuration
	err  error
}

func (r *reader) str(key string) (string, bool) {
	if !r.conf.IsSet(key) {
		return "", false
	}
	return strings.TrimSpace(r.conf.GetString(key)), true
}

func (r *reader) boolean(key string, dflt bool) bool {
	v, ok := r.str(key)
	if !ok || r.err != nil {
		return dflt
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.err = fmt.Errorf("%w: %s = %q", ErrMalformedValue, key, v)
		return dflt
	}
	return b
}

func (r *reader) float(key string, dflt, min, max float64) float64 {
	v, ok := r.str(key)
	if !ok || r.err != nil {
		return dflt
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.err = fmt.Errorf("%w: %s = %q", ErrMalformedValue, key, v)
		return dflt
	}
	if !(f >= min && f <= max) {
		r.err = fmt.Errorf("%w: %s = %g, expected [%g,%g]", ErrOutOfRange, key, f, min, max)
		return dflt
	}
	return f
}

func (r *reader) integer(key string, dflt, min, max int) int {
	v, ok := r.str(key)
	if !ok || r.err != nil {
		return dflt
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = fmt.Errorf("%w: %s = %q", ErrMalformedValue, key, v)
		return dflt
	}
	if n < min || n > max {
		r.err = fmt.Errorf("%w: %s = %d, expected [%d,%d]", ErrOutOfRange, key, n, min, max)
		return dflt
	}
	return n
}
