package apiclient

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "photom_client",
			Name:      "requests_total",
			Help:      "Requests issued by the API client, by method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "photom_client",
			Name:      "request_duration_seconds",
			Help:      "Time from sending a request to receiving response headers.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// observeRequest records one request outcome. Transport failures are
// counted with code "error".
func observeRequest(method string, resp *http.Response, err error, elapsed time.Duration) {
	code := "error"
	if err == nil && resp != nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(method, code).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
