package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperf/studentperf/internal/model"
)

func TestStudentRecord_NumericValue(t *testing.T) {
	rec := baseRecord()

	tests := []struct {
		key  string
		want float64
	}{
		{model.KeySleepHours, 7.0},
		{model.KeyExerciseFrequency, 3.0},
		{model.KeyStressLevel, 5.0},
		{model.KeyScreenTime, 5.0},
		{model.KeyMotivationLevel, 6.0},
		{model.KeyExamAnxietyScore, 7.0},
		{model.KeyStudyEfficiency, 2.0},
		{model.KeyScreenTimePenalty, 10.0},
	}

	for _, tt := range tests {
		value, err := rec.NumericValue(tt.key)
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.want, value, tt.key)
	}

	_, err := rec.NumericValue(model.KeyStudyEnvironment)
	assert.Error(t, err)
	_, err = rec.NumericValue("gpa")
	assert.Error(t, err)
}

func TestStudentRecord_CategoricalValue(t *testing.T) {
	rec := baseRecord()

	env, err := rec.CategoricalValue(model.KeyStudyEnvironment)
	require.NoError(t, err)
	assert.Equal(t, "Quiet Room", env)

	tutoring, err := rec.CategoricalValue(model.KeyAccessToTutoring)
	require.NoError(t, err)
	assert.Equal(t, "Yes", tutoring)

	_, err = rec.CategoricalValue(model.KeySleepHours)
	assert.Error(t, err)
}

func TestIsCategorical(t *testing.T) {
	assert.True(t, model.IsCategorical(model.KeyStudyEnvironment))
	assert.True(t, model.IsCategorical(model.KeyAccessToTutoring))
	assert.False(t, model.IsCategorical(model.KeySleepHours))
	assert.False(t, model.IsCategorical("gpa"))
}

func TestAttributeKeys_Complete(t *testing.T) {
	require.Len(t, model.AttributeKeys, 10)

	seen := make(map[string]bool)
	for _, key := range model.AttributeKeys {
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
