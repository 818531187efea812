package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portaladmin", Name: "http_requests_total", Help: "Number of HTTP requests by method, path and status."},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "portaladmin", Name: "http_request_duration_seconds", Help: "HTTP request latency by method and path.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(RequestDuration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records a counter and a latency sample per request. The
// route pattern is used as the path label so ids don't blow up the
// label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}

		RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		RequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
