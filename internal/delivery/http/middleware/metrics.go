package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records one completed request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// Metrics reports every request to obs, labelled by the ServeMux pattern that
// matched it. Unmatched requests share one label so paths cannot explode the
// label space.
func Metrics(obs RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		obs.ObserveRequest(r.Method, route, wrapped.status, time.Since(start))
	})
}
