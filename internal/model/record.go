package model

import "fmt"

// Canonical attribute keys, matching the column names the classifier
// artifact was trained on.
const (
	KeySleepHours        = "sleep_hours"
	KeyExerciseFrequency = "exercise_frequency"
	KeyStressLevel       = "stress_level"
	KeyScreenTime        = "screen_time"
	KeyStudyEnvironment  = "study_environment"
	KeyAccessToTutoring  = "access_to_tutoring"
	KeyMotivationLevel   = "motivation_level"
	KeyExamAnxietyScore  = "exam_anxiety_score"
	KeyStudyEfficiency   = "study_efficiency"
	KeyScreenTimePenalty = "screen_time_penalty"
)

// AttributeKeys lists every record attribute in canonical order.
var AttributeKeys = []string{
	KeySleepHours,
	KeyExerciseFrequency,
	KeyStressLevel,
	KeyScreenTime,
	KeyStudyEnvironment,
	KeyAccessToTutoring,
	KeyMotivationLevel,
	KeyExamAnxietyScore,
	KeyStudyEfficiency,
	KeyScreenTimePenalty,
}

// StudentRecord is the input to one inference call: ten named, bounded
// attributes describing a student's lifestyle and study behavior.
type StudentRecord struct {
	SleepHours        float64
	ExerciseFrequency int
	StressLevel       float64
	ScreenTime        float64
	StudyEnvironment  string
	AccessToTutoring  string
	MotivationLevel   int
	ExamAnxietyScore  float64
	StudyEfficiency   float64
	ScreenTimePenalty float64
}

// NumericValue returns the value of a numeric attribute by key.
func (r StudentRecord) NumericValue(key string) (float64, error) {
	switch key {
	case KeySleepHours:
		return r.SleepHours, nil
	case KeyExerciseFrequency:
		return float64(r.ExerciseFrequency), nil
	case KeyStressLevel:
		return r.StressLevel, nil
	case KeyScreenTime:
		return r.ScreenTime, nil
	case KeyMotivationLevel:
		return float64(r.MotivationLevel), nil
	case KeyExamAnxietyScore:
		return r.ExamAnxietyScore, nil
	case KeyStudyEfficiency:
		return r.StudyEfficiency, nil
	case KeyScreenTimePenalty:
		return r.ScreenTimePenalty, nil
	}
	return 0, fmt.Errorf("unknown numeric attribute %q", key)
}

// CategoricalValue returns the value of a categorical attribute by key.
func (r StudentRecord) CategoricalValue(key string) (string, error) {
	switch key {
	case KeyStudyEnvironment:
		return r.StudyEnvironment, nil
	case KeyAccessToTutoring:
		return r.AccessToTutoring, nil
	}
	return "", fmt.Errorf("unknown categorical attribute %q", key)
}

// IsCategorical reports whether key names one of the two categorical
// attributes.
func IsCategorical(key string) bool {
	return key == KeyStudyEnvironment || key == KeyAccessToTutoring
}
