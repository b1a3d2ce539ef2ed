package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStart_RecordsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	done := c.Start("search")
	assert.Equal(t, float64(1), testutil.ToFloat64(c.InFlight))

	done(OutcomeOK)

	assert.Equal(t, float64(0), testutil.ToFloat64(c.InFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.RequestTotals.WithLabelValues("search", OutcomeOK)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.RequestDuration))
}

func TestStart_SeparatesOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.Start("chat")(OutcomeTransport)
	c.Start("chat")(OutcomeTransport)
	c.Start("chat")(OutcomeDecode)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.RequestTotals.WithLabelValues("chat", OutcomeTransport)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.RequestTotals.WithLabelValues("chat", OutcomeDecode)))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)
	c.Start("seed")(OutcomeStatus)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `pharmtui_backend_requests_total{endpoint="seed",outcome="status"} 1`))
}
