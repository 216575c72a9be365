package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studentperf/studentperf/internal/features"
	"github.com/studentperf/studentperf/internal/logger"
	"github.com/studentperf/studentperf/internal/metrics"
	"github.com/studentperf/studentperf/internal/model"
)

// Predictor runs one synchronous inference on a single record.
type Predictor interface {
	Predict(rec model.StudentRecord) (model.PerformanceClass, error)
}

// PredictHandler serves the Prediction view and the JSON prediction API.
type PredictHandler struct {
	clf Predictor
}

func NewPredictHandler(clf Predictor) *PredictHandler {
	return &PredictHandler{clf: clf}
}

// Form renders the prediction form with every control at its default
// value. Rendering the form never invokes the model.
func (h *PredictHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "predict", gin.H{
		"Active":   "predict",
		"Features": features.All(),
		"Values":   defaultFormValues(),
	})
}

// Submit assembles one record from the posted form, clamps every value
// into its declared domain, runs a single inference, and re-renders the
// form with the submitted values echoed back and the result banner shown.
func (h *PredictHandler) Submit(c *gin.Context) {
	rec, values := recordFromForm(c.PostForm)

	class, err := h.predict(rec)
	if err != nil {
		logger.Errorf("inference failed: %v", err)
		c.HTML(http.StatusInternalServerError, "predict", gin.H{
			"Active":   "predict",
			"Features": features.All(),
			"Values":   values,
			"Error":    "prediction failed, see server logs",
		})
		return
	}

	c.HTML(http.StatusOK, "predict", gin.H{
		"Active":   "predict",
		"Features": features.All(),
		"Values":   values,
		"Result":   class.Label(),
	})
}

// PredictRequest is the JSON prediction API body. Omitted attributes fall
// back to their documented defaults; present ones are clamped into their
// declared domains before inference.
type PredictRequest struct {
	SleepHours        *float64 `json:"sleep_hours"`
	ExerciseFrequency *int     `json:"exercise_frequency"`
	StressLevel       *float64 `json:"stress_level"`
	ScreenTime        *float64 `json:"screen_time"`
	StudyEnvironment  *string  `json:"study_environment"`
	AccessToTutoring  *string  `json:"access_to_tutoring"`
	MotivationLevel   *int     `json:"motivation_level"`
	ExamAnxietyScore  *float64 `json:"exam_anxiety_score"`
	StudyEfficiency   *float64 `json:"study_efficiency"`
	ScreenTimePenalty *float64 `json:"screen_time_penalty"`
}

type PredictResponse struct {
	Class int    `json:"class"`
	Label string `json:"label"`
}

// PredictJSON is the API twin of Submit for non-browser clients.
func (h *PredictHandler) PredictJSON(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec := recordFromRequest(req)

	class, err := h.predict(rec)
	if err != nil {
		logger.Errorf("inference failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Class: int(class),
		Label: class.Label(),
	})
}

// predict runs one inference and records the outcome counters.
func (h *PredictHandler) predict(rec model.StudentRecord) (model.PerformanceClass, error) {
	start := time.Now()
	class, err := h.clf.Predict(rec)
	metrics.Get().SetPredictionLatency(time.Since(start))

	if err != nil {
		metrics.Get().IncPredictionErrors()
		return 0, err
	}

	metrics.Get().IncPrediction(class.Label())
	return class, nil
}

// recordFromForm builds a clamped record from posted form values and the
// echo map used to keep the form sticky. Unparsable numeric input falls
// back to the attribute default.
func recordFromForm(get func(key string) string) (model.StudentRecord, map[string]string) {
	rec := features.Defaults()
	values := make(map[string]string, len(model.AttributeKeys))

	for _, spec := range features.All() {
		raw := get(spec.Key)

		if spec.Kind == features.KindSelect {
			opt := spec.ClampOption(raw)
			setCategorical(&rec, spec.Key, opt)
			values[spec.Key] = opt
			continue
		}

		v := spec.Default
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			v = parsed
		}
		v = spec.Clamp(v)
		setNumeric(&rec, spec.Key, v)
		values[spec.Key] = formatValue(spec, v)
	}

	return rec, values
}

func recordFromRequest(req PredictRequest) model.StudentRecord {
	rec := features.Defaults()

	assignFloat := func(key string, v *float64) {
		if v == nil {
			return
		}
		spec, _ := features.ByKey(key)
		setNumeric(&rec, key, spec.Clamp(*v))
	}
	assignInt := func(key string, v *int) {
		if v == nil {
			return
		}
		spec, _ := features.ByKey(key)
		setNumeric(&rec, key, spec.Clamp(float64(*v)))
	}
	assignOption := func(key string, v *string) {
		if v == nil {
			return
		}
		spec, _ := features.ByKey(key)
		setCategorical(&rec, key, spec.ClampOption(*v))
	}

	assignFloat(model.KeySleepHours, req.SleepHours)
	assignInt(model.KeyExerciseFrequency, req.ExerciseFrequency)
	assignFloat(model.KeyStressLevel, req.StressLevel)
	assignFloat(model.KeyScreenTime, req.ScreenTime)
	assignOption(model.KeyStudyEnvironment, req.StudyEnvironment)
	assignOption(model.KeyAccessToTutoring, req.AccessToTutoring)
	assignInt(model.KeyMotivationLevel, req.MotivationLevel)
	assignFloat(model.KeyExamAnxietyScore, req.ExamAnxietyScore)
	assignFloat(model.KeyStudyEfficiency, req.StudyEfficiency)
	assignFloat(model.KeyScreenTimePenalty, req.ScreenTimePenalty)

	return rec
}

func setNumeric(rec *model.StudentRecord, key string, v float64) {
	switch key {
	case model.KeySleepHours:
		rec.SleepHours = v
	case model.KeyExerciseFrequency:
		rec.ExerciseFrequency = int(v)
	case model.KeyStressLevel:
		rec.StressLevel = v
	case model.KeyScreenTime:
		rec.ScreenTime = v
	case model.KeyMotivationLevel:
		rec.MotivationLevel = int(v)
	case model.KeyExamAnxietyScore:
		rec.ExamAnxietyScore = v
	case model.KeyStudyEfficiency:
		rec.StudyEfficiency = v
	case model.KeyScreenTimePenalty:
		rec.ScreenTimePenalty = v
	}
}

func setCategorical(rec *model.StudentRecord, key, v string) {
	switch key {
	case model.KeyStudyEnvironment:
		rec.StudyEnvironment = v
	case model.KeyAccessToTutoring:
		rec.AccessToTutoring = v
	}
}

func formatValue(spec features.Spec, v float64) string {
	if spec.Integer {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func defaultFormValues() map[string]string {
	values := make(map[string]string, len(model.AttributeKeys))
	for _, spec := range features.All() {
		if spec.Kind == features.KindSelect {
			values[spec.Key] = spec.DefaultOpt
			continue
		}
		values[spec.Key] = formatValue(spec, spec.Default)
	}
	return values
}
