package restapi

import (
	"net/http"

	"expense_tracker/internal/config"
	"expense_tracker/internal/logger"

	"golang.org/x/time/rate"
)

// rateLimiter throttles a set of handlers with one shared token bucket.
// A nil limiter lets every request through.
type rateLimiter struct {
	limiter *rate.Limiter
	logger  logger.AppLogger
}

func newRateLimiter(cfg config.RateLimitConfig, appLogger logger.AppLogger) *rateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		return &rateLimiter{logger: appLogger}
	}
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		logger:  appLogger,
	}
}

func (l *rateLimiter) wrap(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.limiter != nil && !l.limiter.Allow() {
			requestLogger := l.logger.With("method", r.Method, "path", r.URL.Path)
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", requestLogger)
			return
		}
		next(w, r)
	})
}
