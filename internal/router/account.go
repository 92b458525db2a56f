package router

import (
	"net/http"

	"github.com/deppfellow/social-media-api/internal/handler"
	"github.com/deppfellow/social-media-api/internal/middleware"
	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerAccountRoutes mounts /register and /login behind the auth rate
// limiter.
func registerAccountRoutes(r *echo.Echo, h *handler.AccountHandler, limiter *middleware.RateLimitMiddleware) {
	limit := limiter.LimitAuth()

	r.POST("/register", handler.Handle(
		h.Handler,
		h.Register,
		http.StatusOK,
		&model.RegisterAccountPayload{},
	), limit)

	r.POST("/login", handler.Handle(
		h.Handler,
		h.Login,
		http.StatusOK,
		&model.LoginPayload{},
	), limit)
}
