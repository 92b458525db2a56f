package middleware

import (
	"context"
	"strconv"

	"github.com/deppfellow/social-media-api/internal/errs"
	"github.com/deppfellow/social-media-api/internal/lib/ratelimit"
	"github.com/deppfellow/social-media-api/internal/server"
	"github.com/labstack/echo/v4"
)

// AttemptLimiter is implemented by *ratelimit.Limiter.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (ratelimit.Result, error)
}

// RateLimitMiddleware throttles /register and /login per client IP.
type RateLimitMiddleware struct {
	server  *server.Server
	limiter AttemptLimiter // nil when Redis or the limit is not configured
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	var limiter AttemptLimiter
	if s.Redis != nil && s.Config.RateLimit.AuthLimit > 0 {
		limiter = ratelimit.New(s.Redis, "auth", s.Config.RateLimit.AuthLimit, s.Config.RateLimit.AuthWindow)
	}

	return NewRateLimitMiddlewareWithLimiter(s, limiter)
}

// NewRateLimitMiddlewareWithLimiter uses limiter as given; nil disables
// limiting.
func NewRateLimitMiddlewareWithLimiter(s *server.Server, limiter AttemptLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server:  s,
		limiter: limiter,
	}
}

// LimitAuth rejects a client with 429 once it exhausts its window. When
// Redis cannot be reached the request is let through and the failure logged.
func (r *RateLimitMiddleware) LimitAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if r.limiter == nil {
			return next
		}

		return func(c echo.Context) error {
			result, err := r.limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				header.Set("Retry-After", strconv.Itoa(int(result.ResetIn.Seconds())+1))
				r.RecordRateLimitHit(c.Path())

				GetLogger(c).Warn().Str("endpoint", c.Path()).Msg("auth rate limit exceeded")

				return errs.NewTooManyRequestsError("Too many attempts, try again later")
			}

			return next(c)
		}
	}
}

// RecordRateLimitHit reports a rejection to New Relic as a custom event.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
