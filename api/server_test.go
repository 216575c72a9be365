package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studentperf/studentperf/api"
	"github.com/studentperf/studentperf/internal/model"
	"github.com/studentperf/studentperf/pkg/config"
)

// stubClassifier stands in for the loaded artifact so handler tests can
// observe exactly when and with what record inference runs.
type stubClassifier struct {
	class model.PerformanceClass
	err   error
	calls int
	last  model.StudentRecord
}

func (s *stubClassifier) Predict(rec model.StudentRecord) (model.PerformanceClass, error) {
	s.calls++
	s.last = rec
	return s.class, s.err
}

func (s *stubClassifier) Version() string {
	return "stub"
}

func newTestServer(clf api.Classifier) *api.Server {
	cfg := config.APIConfig{
		Port:         8080,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  5 * time.Second,
		RateLimit:    1000,
		MaxBodyBytes: 1 << 16,
	}
	assets := config.AssetsConfig{
		TemplateGlob:  "../web/templates/*.tmpl",
		StaticDir:     "../web/static",
		OverviewImage: "campus.jpg",
	}
	return api.NewServer(cfg, assets, "test", clf)
}

func doRequest(s *api.Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func postForm(s *api.Server, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(s, req)
}

func defaultForm() url.Values {
	return url.Values{
		"sleep_hours":         {"7.0"},
		"exercise_frequency":  {"3"},
		"stress_level":        {"5.0"},
		"screen_time":         {"5.0"},
		"study_environment":   {"Quiet Room"},
		"access_to_tutoring":  {"Yes"},
		"motivation_level":    {"6"},
		"exam_anxiety_score":  {"7.0"},
		"study_efficiency":    {"2.0"},
		"screen_time_penalty": {"10.0"},
	}
}

func TestOverviewPage(t *testing.T) {
	clf := &stubClassifier{}
	s := newTestServer(clf)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dataset Overview")
	assert.Contains(t, w.Body.String(), "≈ 82,000")
	assert.Contains(t, w.Body.String(), "31")
	assert.Equal(t, 0, clf.calls)
}

func TestOverviewPage_MissingImageDegrades(t *testing.T) {
	// No campus.jpg exists under the static dir, so the page renders
	// without the hero image rather than failing.
	s := newTestServer(&stubClassifier{})

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "class=\"hero\"")
}

func TestGlossaryPage(t *testing.T) {
	clf := &stubClassifier{}
	s := newTestServer(clf)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/features", nil))

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, key := range model.AttributeKeys {
		assert.Contains(t, body, "<code>"+key+"</code>")
	}
	assert.Equal(t, 10, strings.Count(body, "<code>"))
	assert.Equal(t, 0, clf.calls)
}

func TestPredictForm(t *testing.T) {
	clf := &stubClassifier{}
	s := newTestServer(clf)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/predict", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Enter Student Information")
	// Rendering the form never runs inference.
	assert.Equal(t, 0, clf.calls)
}

func TestPredictSubmit_Defaults(t *testing.T) {
	clf := &stubClassifier{class: model.ClassAverage}
	s := newTestServer(clf)

	w := postForm(s, "/predict", defaultForm())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, clf.calls)
	assert.Contains(t, w.Body.String(), "Predicted Performance Level")
	assert.Contains(t, w.Body.String(), "Average")

	assert.Equal(t, 7.0, clf.last.SleepHours)
	assert.Equal(t, 3, clf.last.ExerciseFrequency)
	assert.Equal(t, "Quiet Room", clf.last.StudyEnvironment)
	assert.Equal(t, "Yes", clf.last.AccessToTutoring)
}

func TestPredictSubmit_ClampsOutOfDomainValues(t *testing.T) {
	clf := &stubClassifier{class: model.ClassAtRisk}
	s := newTestServer(clf)

	form := defaultForm()
	form.Set("sleep_hours", "99")
	form.Set("screen_time", "-5")
	form.Set("motivation_level", "0")
	form.Set("study_environment", "Rooftop")

	w := postForm(s, "/predict", form)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12.0, clf.last.SleepHours)
	assert.Equal(t, 0.3, clf.last.ScreenTime)
	assert.Equal(t, 1, clf.last.MotivationLevel)
	assert.Equal(t, "Quiet Room", clf.last.StudyEnvironment)
}

func TestPredictSubmit_UnparsableValueFallsBackToDefault(t *testing.T) {
	clf := &stubClassifier{class: model.ClassAverage}
	s := newTestServer(clf)

	form := defaultForm()
	form.Set("stress_level", "very stressed")

	w := postForm(s, "/predict", form)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5.0, clf.last.StressLevel)
}

func TestPredictJSON(t *testing.T) {
	clf := &stubClassifier{class: model.ClassHighPerformer}
	s := newTestServer(clf)

	body := strings.NewReader(`{"stress_level": 9.5, "access_to_tutoring": "No"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", body)
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(s, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Class int    `json:"class"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Class)
	assert.Equal(t, "High Performer", resp.Label)

	// Provided attributes are used, omitted ones fall back to defaults.
	assert.Equal(t, 9.5, clf.last.StressLevel)
	assert.Equal(t, "No", clf.last.AccessToTutoring)
	assert.Equal(t, 7.0, clf.last.SleepHours)
	assert.Equal(t, 1, clf.calls)
}

func TestPredictJSON_UnknownClassMapsToUnknown(t *testing.T) {
	clf := &stubClassifier{class: model.PerformanceClass(7)}
	s := newTestServer(clf)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(s, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Class int    `json:"class"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Class)
	assert.Equal(t, "Unknown", resp.Label)
}

func TestPredictJSON_InvalidBody(t *testing.T) {
	clf := &stubClassifier{}
	s := newTestServer(clf)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := doRequest(s, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, clf.calls)
}

func TestNavigation_NeverInvokesModel(t *testing.T) {
	clf := &stubClassifier{}
	s := newTestServer(clf)

	for _, path := range []string{"/", "/features", "/predict", "/", "/predict"} {
		w := doRequest(s, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
	}

	assert.Equal(t, 0, clf.calls)
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(&stubClassifier{})

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Contains(t, w.Body.String(), "stub")

	w = doRequest(s, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(s, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
