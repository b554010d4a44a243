package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	m := New("codeclarity-test")

	m.ObserveNotification("operator-consultation-alert", "log", "sent", 0.01)
	m.ObserveNotification("operator-consultation-alert", "log", "sent", 0.02)
	m.ObserveSubmission("consultation", "completed_with_warning")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("operator-consultation-alert", "log", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("consultation", "completed_with_warning")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("codeclarity-test")
	m.ObserveSubmission("bootcamp", "completed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `submissions_total{flow="bootcamp",service="codeclarity-test",status="completed"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("a")
	})
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveNotification("operator-bootcamp-alert", "smtp", "failed", 1)
		m.ObserveSubmission("bootcamp", "failed")
	})
}
