package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/deppfellow/social-media-api/internal/errs"
	"github.com/deppfellow/social-media-api/internal/middleware"
	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// MessageService is implemented by *service.MessageService.
type MessageService interface {
	List(ctx context.Context) ([]model.Message, error)
	ListByAccount(ctx context.Context, accountID int) ([]model.Message, error)
	Get(ctx context.Context, messageID int) (*model.Message, error)
	Create(ctx context.Context, message model.Message) (*model.Message, error)
	UpdateText(ctx context.Context, messageID int, text string) (*model.Message, error)
	Delete(ctx context.Context, messageID int) (*model.Message, error)
}

type MessageHandler struct {
	Handler
	messageService MessageService
}

func NewMessageHandler(s *server.Server, messageService MessageService) *MessageHandler {
	return &MessageHandler{
		Handler:        NewHandler(s),
		messageService: messageService,
	}
}

// ListMessages answers GET /messages. It always returns a JSON array; a
// storage failure yields an empty one.
func (h *MessageHandler) ListMessages(c echo.Context, _ *model.EmptyPayload) ([]model.Message, error) {
	messages, err := h.messageService.List(c.Request().Context())
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Msg("listing messages failed, returning empty list")
	}

	return nonNil(messages), nil
}

// ListAccountMessages answers GET /accounts/:account_id/messages.
func (h *MessageHandler) ListAccountMessages(c echo.Context, payload *model.AccountIDPayload) ([]model.Message, error) {
	messages, err := h.messageService.ListByAccount(c.Request().Context(), payload.AccountID)
	if err != nil {
		middleware.GetLogger(c).Error().Err(err).Int("account_id", payload.AccountID).
			Msg("listing account messages failed, returning empty list")
	}

	return nonNil(messages), nil
}

// GetMessage answers GET /messages/:message_id. An unknown id is a 200 with
// an empty body.
func (h *MessageHandler) GetMessage(c echo.Context, payload *model.MessageIDPayload) (*model.Message, error) {
	message, err := h.messageService.Get(c.Request().Context(), payload.MessageID)
	if err != nil {
		logAbsent(middleware.GetLogger(c), err, payload.MessageID, "message lookup")
		return nil, nil
	}

	return message, nil
}

// CreateMessage answers POST /messages. Every failure is a 400 with no body.
func (h *MessageHandler) CreateMessage(c echo.Context, payload *model.CreateMessagePayload) (*model.Message, error) {
	message, err := h.messageService.Create(c.Request().Context(), payload.ToMessage())
	if err != nil {
		middleware.GetLogger(c).Info().Err(err).Int("posted_by", payload.PostedBy).Msg("message creation refused")
		return nil, errs.NewEmptyError(http.StatusBadRequest)
	}

	return message, nil
}

// UpdateMessage answers PATCH /messages/:message_id. Invalid text and an
// unknown id are both a 400 with no body.
func (h *MessageHandler) UpdateMessage(c echo.Context, payload *model.UpdateMessagePayload) (*model.Message, error) {
	message, err := h.messageService.UpdateText(c.Request().Context(), payload.MessageID, payload.MessageText)
	if err != nil {
		middleware.GetLogger(c).Info().Err(err).Int("message_id", payload.MessageID).Msg("message update refused")
		return nil, errs.NewEmptyError(http.StatusBadRequest)
	}

	return message, nil
}

// DeleteMessage answers DELETE /messages/:message_id with the deleted
// message. Deleting an unknown id is a 200 with an empty body, so repeating
// a delete is harmless.
func (h *MessageHandler) DeleteMessage(c echo.Context, payload *model.MessageIDPayload) (*model.Message, error) {
	message, err := h.messageService.Delete(c.Request().Context(), payload.MessageID)
	if err != nil {
		logAbsent(middleware.GetLogger(c), err, payload.MessageID, "message delete")
		return nil, nil
	}

	return message, nil
}

// logAbsent logs a missing message at debug and a storage failure at error.
// Both reach the client the same way.
func logAbsent(logger *zerolog.Logger, err error, messageID int, op string) {
	if errors.Is(err, model.ErrMessageNotFound) {
		logger.Debug().Int("message_id", messageID).Msg(op + ": no such message")
		return
	}

	logger.Error().Err(err).Int("message_id", messageID).Msg(op + " failed")
}

func nonNil(messages []model.Message) []model.Message {
	if messages == nil {
		return []model.Message{}
	}
	return messages
}
