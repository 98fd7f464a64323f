package middleware

import (
	"fmt"
	"net/http"

	"github.com/graphexplorer/core/internal/ctxlog"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests with 429 once limiter is exhausted. The limiter is
// shared by every caller of the wrapped route.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%g", float64(limiter.Limit())))
				w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", max(int(limiter.Tokens()), 0)))
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprint(w, `{"error":"rate limit exceeded","code":"rate_limited"}`)
				ctxlog.FromContext(r.Context()).Warn("rate limit exceeded",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
