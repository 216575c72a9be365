// Package features is the single source of truth for the ten input
// attributes: their bounds, defaults, form widgets, and glossary text.
// The prediction form, the server-side clamping, and the Feature
// Explanation view all render from the same ordered list.
package features

import (
	"math"

	"github.com/studentperf/studentperf/internal/model"
)

// Kind selects the form widget used for an attribute.
type Kind string

const (
	KindSlider Kind = "slider"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

// Spec describes one input attribute.
type Spec struct {
	Key         string
	Label       string
	Kind        Kind
	Min         float64
	Max         float64
	Step        float64
	Default     float64
	Integer     bool
	Options     []string
	DefaultOpt  string
	Description string
}

// specs is the fixed attribute order. The Glossary view renders exactly
// these rows in exactly this order.
var specs = []Spec{
	{
		Key:         model.KeySleepHours,
		Label:       "Sleep Hours per Day",
		Kind:        KindSlider,
		Min:         4.0,
		Max:         12.0,
		Step:        0.1,
		Default:     7.0,
		Description: "Average number of hours the student sleeps per day. Adequate sleep improves focus, memory, and academic performance.",
	},
	{
		Key:         model.KeyExerciseFrequency,
		Label:       "Exercise Frequency (per week)",
		Kind:        KindSlider,
		Min:         0,
		Max:         7,
		Step:        1,
		Default:     3,
		Integer:     true,
		Description: "Number of times the student exercises per week. Regular exercise is linked to better mental health and concentration.",
	},
	{
		Key:         model.KeyStressLevel,
		Label:       "Stress Level",
		Kind:        KindSlider,
		Min:         1.0,
		Max:         10.0,
		Step:        0.1,
		Default:     5.0,
		Description: "Measures the student's stress level on a scale from 1 to 10. Higher stress often negatively impacts academic outcomes.",
	},
	{
		Key:         model.KeyScreenTime,
		Label:       "Daily Screen Time (hours)",
		Kind:        KindSlider,
		Min:         0.3,
		Max:         21.0,
		Step:        0.1,
		Default:     5.0,
		Description: "Total daily screen time in hours. Excessive screen usage may reduce study time and sleep quality.",
	},
	{
		Key:         model.KeyStudyEnvironment,
		Label:       "Study Environment",
		Kind:        KindSelect,
		Options:     []string{"Quiet Room", "Library", "Co-Learning Group", "Dorm", "Cafe"},
		DefaultOpt:  "Quiet Room",
		Description: "The environment where the student usually studies (e.g., quiet room, library). A better environment enhances productivity.",
	},
	{
		Key:         model.KeyAccessToTutoring,
		Label:       "Access to Tutoring",
		Kind:        KindSelect,
		Options:     []string{"Yes", "No"},
		DefaultOpt:  "Yes",
		Description: "Indicates whether the student has access to additional tutoring or academic support.",
	},
	{
		Key:         model.KeyMotivationLevel,
		Label:       "Motivation Level",
		Kind:        KindSlider,
		Min:         1,
		Max:         10,
		Step:        1,
		Default:     6,
		Integer:     true,
		Description: "Represents how motivated the student is to study, rated from 1 to 10. Higher motivation usually leads to better performance.",
	},
	{
		Key:         model.KeyExamAnxietyScore,
		Label:       "Exam Anxiety Score",
		Kind:        KindSlider,
		Min:         5.0,
		Max:         10.0,
		Step:        0.5,
		Default:     7.0,
		Description: "Measures anxiety level before exams. High anxiety can reduce exam performance despite good preparation.",
	},
	{
		Key:         model.KeyStudyEfficiency,
		Label:       "Study Efficiency",
		Kind:        KindNumber,
		Min:         0.0,
		Max:         5.75,
		Step:        0.05,
		Default:     2.0,
		Description: "Represents how effectively the student studies within a given time. Higher values indicate better focus and learning quality.",
	},
	{
		Key:         model.KeyScreenTimePenalty,
		Label:       "Screen Time Penalty",
		Kind:        KindNumber,
		Min:         0.0,
		Max:         90.0,
		Step:        1.0,
		Default:     10.0,
		Description: "Quantifies the negative impact of excessive screen time on academic performance.",
	},
}

// All returns the attribute specs in their fixed order.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs)
	return out
}

// ByKey looks up a spec by attribute key.
func ByKey(key string) (Spec, bool) {
	for _, s := range specs {
		if s.Key == key {
			return s, true
		}
	}
	return Spec{}, false
}

// Clamp forces a numeric value into the attribute's declared domain,
// snapping integer attributes to whole numbers.
func (s Spec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		v = s.Default
	}
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	if s.Integer {
		v = math.Round(v)
	}
	return v
}

// ClampOption forces a categorical value onto one of the declared levels,
// falling back to the default level.
func (s Spec) ClampOption(v string) string {
	for _, opt := range s.Options {
		if opt == v {
			return v
		}
	}
	return s.DefaultOpt
}

// Defaults returns a record populated with every attribute's default value.
func Defaults() model.StudentRecord {
	return model.StudentRecord{
		SleepHours:        defaultFor(model.KeySleepHours),
		ExerciseFrequency: int(defaultFor(model.KeyExerciseFrequency)),
		StressLevel:       defaultFor(model.KeyStressLevel),
		ScreenTime:        defaultFor(model.KeyScreenTime),
		StudyEnvironment:  defaultOptFor(model.KeyStudyEnvironment),
		AccessToTutoring:  defaultOptFor(model.KeyAccessToTutoring),
		MotivationLevel:   int(defaultFor(model.KeyMotivationLevel)),
		ExamAnxietyScore:  defaultFor(model.KeyExamAnxietyScore),
		StudyEfficiency:   defaultFor(model.KeyStudyEfficiency),
		ScreenTimePenalty: defaultFor(model.KeyScreenTimePenalty),
	}
}

func defaultFor(key string) float64 {
	s, _ := ByKey(key)
	return s.Default
}

func defaultOptFor(key string) string {
	s, _ := ByKey(key)
	return s.DefaultOpt
}
