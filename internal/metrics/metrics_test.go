package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/data", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/data", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/submit", http.StatusBadRequest, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/data", "200")); got != 2 {
		t.Errorf("GET /api/data 200 = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/submit", "400")); got != 1 {
		t.Errorf("POST /api/submit 400 = %v, want 1", got)
	}
}

func TestRecordValidation(t *testing.T) {
	m := New()
	m.RecordValidation("/api/submit", true)
	m.RecordValidation("/api/submit", false)
	m.RecordValidation("/api/submit", false)

	if got := testutil.ToFloat64(m.validations.WithLabelValues("/api/submit", ResultInvalid)); got != 2 {
		t.Errorf("invalid = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.validations.WithLabelValues("/api/submit", ResultValid)); got != 1 {
		t.Errorf("valid = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.RecordValidation("/", true)
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.RecordValidation("/api/submit", true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `webapp_validations_total{result="valid",route="/api/submit"} 1`) {
		t.Errorf("metrics output missing validation counter:\n%s", rec.Body.String())
	}
}
