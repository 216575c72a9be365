package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Metrics tracks service-level counters exposed in Prometheus text
// format. Inference inputs and results are never recorded, only counts
// and timings.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	predictionsTotal map[string]int64 // label -> count
	predictionErrors int64
	pageViewsTotal   map[string]int64 // view -> count

	// Histograms (simplified - just track last values)
	predictionLatency time.Duration
}

var (
	instance *Metrics
	once     sync.Once
)

func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			predictionsTotal: make(map[string]int64),
			pageViewsTotal:   make(map[string]int64),
		}
	})
	return instance
}

func (m *Metrics) IncPrediction(label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictionsTotal[label]++
}

func (m *Metrics) IncPredictionErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictionErrors++
}

func (m *Metrics) IncPageView(view string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageViewsTotal[view]++
}

func (m *Metrics) SetPredictionLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predictionLatency = d
}

func (m *Metrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.RLock()
		defer m.mu.RUnlock()

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		// Predictions by label
		for label, count := range m.predictionsTotal {
			writeMetric(w, "studentperf_predictions_total", map[string]string{"label": label}, float64(count))
		}

		// Prediction errors
		writeMetric(w, "studentperf_prediction_errors_total", nil, float64(m.predictionErrors))

		// Page views
		for view, count := range m.pageViewsTotal {
			writeMetric(w, "studentperf_page_views_total", map[string]string{"view": view}, float64(count))
		}

		// Prediction latency
		writeMetric(w, "studentperf_prediction_latency_ms", nil, float64(m.predictionLatency.Milliseconds()))
	})
}

func writeMetric(w http.ResponseWriter, name string, labels map[string]string, value float64) {
	labelStr := ""
	if len(labels) > 0 {
		labelStr = "{"
		first := true
		for k, v := range labels {
			if !first {
				labelStr += ","
			}
			labelStr += k + `="` + v + `"`
			first = false
		}
		labelStr += "}"
	}
	w.Write([]byte(name + labelStr + " " + strconv.FormatFloat(value, 'f', -1, 64) + "\n"))
}
