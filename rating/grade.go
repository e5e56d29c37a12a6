package rating

import "math"

// GradeClass is a coarse classification of a slope.
type GradeClass int8

// Grade classes for |slope| ≤ 5%, ≤ 10% and above.
const (
	Level GradeClass = iota
	Moderate
	Steep
)

// Grade thresholds in percent.
const (
	ModerateGrade = 5.0
	SteepGrade    = 10.0
	visibleGrade  = 0.1
)

func (g GradeClass) String() string {
	switch g {
	case Level:
		return "Level"
	case Moderate:
		return "Moderate"
	case Steep:
		return "Steep"
	}
	return "<unknown>"
}

// ClassifyGrade classifies a signed slope percentage by its magnitude.
func ClassifyGrade(slope float64) GradeClass {
	s := math.Abs(slope)
	switch {
	case s > SteepGrade:
		return Steep
	case s > ModerateGrade:
		return Moderate
	}
	return Level
}

// ShowsGrade is a predicate: is a slope large enough to be worth reporting?
func ShowsGrade(slope float64) bool {
	return math.Abs(slope) > visibleGrade
}
