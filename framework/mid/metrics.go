package mid

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/internal"
)

// Collector holds the request-level Prometheus metrics.
type Collector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector registers the request metrics on the given registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_http_requests_total",
			Help: "HTTP requests handled, by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "checkout_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.latency)

	return c
}

// Metrics records a counter and latency observation per handled request.
func Metrics(c *Collector) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			started := time.Now()

			err := before(ctx)

			status := 0
			if v, ok := internal.DataFromContext(ctx); ok {
				status = v.StatusCode
			}

			c.requests.WithLabelValues(
				ctx.Request.Method,
				ctx.FullPath(),
				strconv.Itoa(status),
			).Inc()
			c.latency.Observe(time.Since(started).Seconds())

			return err
		}

		return h
	}

	return f
}
