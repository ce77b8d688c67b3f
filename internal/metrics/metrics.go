// Package metrics registers the service's Prometheus collectors and
// provides the HTTP instrumentation middleware.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kleos_upstream_requests_total",
			Help: "Total number of Kleos API calls.",
		},
		[]string{"endpoint", "status"},
	)

	tokenRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kleos_token_refreshes_total",
			Help: "Total number of client-credentials grant requests.",
		},
		[]string{"outcome"},
	)

	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "case_submissions_total",
			Help: "Total number of case submission pipeline runs.",
		},
		[]string{"outcome"},
	)

	documentUploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "document_uploads_total",
			Help: "Total number of per-file document upload attempts.",
		},
		[]string{"outcome"},
	)
)

// Init registers all collectors with the default registry.
func Init() {
	prometheus.MustRegister(
		httpInFlight,
		httpRequestsTotal,
		httpRequestDuration,
		upstreamRequestsTotal,
		tokenRefreshesTotal,
		submissionsTotal,
		documentUploadsTotal,
	)
}

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUpstream records one Kleos API call by endpoint and HTTP status.
// A zero status means the call failed before a response arrived.
func ObserveUpstream(endpoint string, status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequestsTotal.WithLabelValues(endpoint, label).Inc()
}

// ObserveTokenRefresh records one grant request.
func ObserveTokenRefresh(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	tokenRefreshesTotal.WithLabelValues(outcome).Inc()
}

// ObserveSubmission records one pipeline run.
func ObserveSubmission(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	submissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpload records one per-file upload attempt.
func ObserveUpload(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	documentUploadsTotal.WithLabelValues(outcome).Inc()
}

// Instrument wraps a handler with request counting and latency tracking.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		// Label with the route template so parameterized routes do not
		// explode label cardinality.
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}

		status := strconv.Itoa(sw.code)
		httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpInFlight.Dec()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
