package telemetry

import (
	"net/http"
	"time"

	"investment-panel/internal/observability"
)

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware wraps an HTTP handler, timing each request and recording one
// call record plus Prometheus observations under the given service name.
func (r *Recorder) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, req)

		elapsed := time.Since(start)
		success := sw.status < http.StatusInternalServerError

		r.Record(req.Context(), service, elapsed, success)
		observability.DefaultMetrics.HTTPRequestDuration.WithLabelValues(service).Observe(elapsed.Seconds())
		if !success {
			observability.DefaultMetrics.HTTPRequestErrors.WithLabelValues(service).Inc()
		}
	})
}
