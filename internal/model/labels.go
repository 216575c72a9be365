package model

// PerformanceClass is the integer class emitted by the classifier.
type PerformanceClass int

const (
	ClassAtRisk        PerformanceClass = 0
	ClassAverage       PerformanceClass = 1
	ClassHighPerformer PerformanceClass = 2
)

// LabelUnknown is rendered for any class integer outside the trained set.
// A correctly trained three-class artifact never produces one, but the
// mapping stays total.
const LabelUnknown = "Unknown"

// Label maps the class integer to its display string.
func (p PerformanceClass) Label() string {
	switch p {
	case ClassAtRisk:
		return "At Risk"
	case ClassAverage:
		return "Average"
	case ClassHighPerformer:
		return "High Performer"
	default:
		return LabelUnknown
	}
}

// Known reports whether the class belongs to the trained three-class set.
func (p PerformanceClass) Known() bool {
	return p >= ClassAtRisk && p <= ClassHighPerformer
}
