package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCounter = NewCounter("test_events", "metrics_test", "events counted by tests", []string{"outcome"})

func TestNewCounter_RegistersUnderNamespace(t *testing.T) {
	testCounter.WithLabelValues(OK).Inc()
	testCounter.WithLabelValues(OK).Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(testCounter.WithLabelValues(OK)))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "notesync_metrics_test_test_events"))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, OK, Outcome(nil))
	assert.Equal(t, Fail, Outcome(errors.New("boom")))
}
