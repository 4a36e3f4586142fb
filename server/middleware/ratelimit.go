package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/chandhuDev/JobLens/internal/metrics"
)

// RateLimit applies one token bucket to every request. rps <= 0 disables
// limiting. Rejected requests get 429 and are counted in m.
func RateLimit(rps float64, burst int, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		if burst < 1 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(rps), burst)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}
			if m != nil {
				m.RateLimited.Inc()
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
		})
	}
}
