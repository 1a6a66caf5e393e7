package backend

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotelhub_backend_requests_total",
		Help: "Requests sent to the hotel REST backend, by resource, method and response code.",
	}, []string{"resource", "method", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotelhub_backend_request_duration_seconds",
		Help:    "Latency of hotel REST backend requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method"})
)

// observe records one request. code is "error" when no response arrived.
func observe(resource, method string, status int, started time.Time) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(resource, method, code).Inc()
	requestDuration.WithLabelValues(resource, method).Observe(time.Since(started).Seconds())
}
