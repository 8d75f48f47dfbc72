package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "code"},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "code"},
	)

	requestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "route"},
	)

	responseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP responses in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "route", "code"},
	)
)

// infrastructurePaths are probes and scrapes; they are kept out of the metrics.
var infrastructurePaths = []string{"/health", "/ready", "/metrics", "/swagger"}

func isInfrastructurePath(path string) bool {
	for _, p := range infrastructurePaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Metrics records Prometheus request metrics labelled by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isInfrastructurePath(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		method := c.Request.Method
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		requestsInFlight.WithLabelValues(method, route).Inc()
		defer requestsInFlight.WithLabelValues(method, route).Dec()

		c.Next()

		code := strconv.Itoa(c.Writer.Status())
		requestDuration.WithLabelValues(method, route, code).Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(method, route, code).Inc()
		responseSize.WithLabelValues(method, route, code).Observe(float64(c.Writer.Size()))
	}
}
