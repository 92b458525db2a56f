package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/social-media-api/internal/middleware"
	"github.com/deppfellow/social-media-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Pinger reports whether a dependency answers.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	Handler
	pingDatabase Pinger
	pingRedis    Pinger // nil when Redis is not configured
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	var database, redis Pinger

	if s.DB != nil {
		database = s.DB.Pool.Ping
	}
	if s.Redis != nil {
		redis = func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}
	}

	return NewHealthHandlerWithPingers(s, database, redis)
}

// NewHealthHandlerWithPingers checks the given pingers instead of the
// server's pool and Redis client. A nil pinger skips that check.
func NewHealthHandlerWithPingers(s *server.Server, database, redis Pinger) *HealthHandler {
	return &HealthHandler{
		Handler:      NewHandler(s),
		pingDatabase: database,
		pingRedis:    redis,
	}
}

// checkResult is one entry under "checks" in the /status response.
type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth answers GET /status.
//
// The database is required: if it does not answer a ping the service is
// reported unhealthy with 503. Redis only backs rate limiting, so a failed
// Redis ping is reported but leaves the overall status healthy.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	observability := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	timeout := 5 * time.Second
	if observability != nil && observability.HealthChecks.Timeout > 0 {
		timeout = observability.HealthChecks.Timeout
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
	defer cancel()

	checkEnabled := func(name string) bool {
		return observability == nil || observability.HasCheck(name)
	}

	if checkEnabled("database") && h.pingDatabase != nil {
		result := h.probe(ctx, &logger, "database", h.pingDatabase)
		response.Checks["database"] = result
		if result.Status != "healthy" {
			response.Status = "unhealthy"
		}
	}

	if checkEnabled("redis") && h.pingRedis != nil {
		response.Checks["redis"] = h.probe(ctx, &logger, "redis", h.pingRedis)
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// probe times one dependency ping and reports failures to the log and New
// Relic.
func (h *HealthHandler) probe(ctx context.Context, logger *zerolog.Logger, name string, ping func(context.Context) error) checkResult {
	probeStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(probeStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordHealthEvent(map[string]any{
			"check_type":       name,
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return checkResult{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	logger.Debug().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)

	return checkResult{Status: "healthy", ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordHealthEvent(attributes map[string]any) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attributes["operation"] = "health_check"
	app.RecordCustomEvent("HealthCheckError", attributes)
}
