package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"p9e.in/treeflow/metrics"
	"p9e.in/treeflow/pkg/apperr"
)

// RateLimitByIP allows requests per minute per client IP on the wrapped
// routes. A non-positive limit disables limiting.
func RateLimitByIP(requests int, endpoint string) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requests,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit(endpoint)
			apperr.Write(w, apperr.RateLimited("Demasiados intentos, intenta nuevamente más tarde"))
		}),
	)
}
