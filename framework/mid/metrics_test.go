package mid

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/internal"
)

func newMetricsTestCtx(method string) *gin.Context {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, "http://localhost:4242/", nil)
	internal.ContextWithData(ctx, &internal.Data{Now: time.Now()})

	return ctx
}

func TestMetricsCountsRequestsByStatus(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	handler := func(ctx *gin.Context) error {
		return web.Respond(ctx, gin.H{"ok": true}, http.StatusOK)
	}
	wrapped := Metrics(collector)(handler)

	require.NoError(t, wrapped(newMetricsTestCtx(http.MethodGet)))
	require.NoError(t, wrapped(newMetricsTestCtx(http.MethodGet)))

	count := testutil.ToFloat64(collector.requests.WithLabelValues(http.MethodGet, "", "200"))
	assert.Equal(t, float64(2), count)
}

func TestMetricsRecordsErrorStatuses(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	handler := func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusBadRequest)
	}
	wrapped := Metrics(collector)(handler)

	require.NoError(t, wrapped(newMetricsTestCtx(http.MethodPost)))

	count := testutil.ToFloat64(collector.requests.WithLabelValues(http.MethodPost, "", "400"))
	assert.Equal(t, float64(1), count)
}
