package router

import (
	"net/http"

	"github.com/deppfellow/social-media-api/internal/handler"
	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerMessageRoutes mounts the message endpoints. Single-message reads
// and deletes use HandleOptional so a missing message answers 200 with no
// body.
func registerMessageRoutes(r *echo.Echo, h *handler.MessageHandler) {
	r.GET("/messages", handler.Handle(
		h.Handler,
		h.ListMessages,
		http.StatusOK,
		&model.EmptyPayload{},
	))

	r.POST("/messages", handler.Handle(
		h.Handler,
		h.CreateMessage,
		http.StatusOK,
		&model.CreateMessagePayload{},
	))

	messages := r.Group("/messages/:message_id")

	messages.GET("", handler.HandleOptional(
		h.Handler,
		h.GetMessage,
		http.StatusOK,
		&model.MessageIDPayload{},
	))

	messages.PATCH("", handler.Handle(
		h.Handler,
		h.UpdateMessage,
		http.StatusOK,
		&model.UpdateMessagePayload{},
	))

	messages.DELETE("", handler.HandleOptional(
		h.Handler,
		h.DeleteMessage,
		http.StatusOK,
		&model.MessageIDPayload{},
	))

	r.GET("/accounts/:account_id/messages", handler.Handle(
		h.Handler,
		h.ListAccountMessages,
		http.StatusOK,
		&model.AccountIDPayload{},
	))
}
