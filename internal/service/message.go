package service

import (
	"context"

	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/server"
)

// MessageStore is implemented by *repository.MessageRepository.
type MessageStore interface {
	ListAll(ctx context.Context) ([]model.Message, error)
	ListByAccount(ctx context.Context, accountID int) ([]model.Message, error)
	Create(ctx context.Context, message model.Message) (*model.Message, error)
	GetByID(ctx context.Context, messageID int) (*model.Message, error)
	UpdateText(ctx context.Context, messageID int, text string) (*model.Message, error)
	DeleteByID(ctx context.Context, messageID int) (*model.Message, error)
}

type MessageService struct {
	server   *server.Server
	messages MessageStore
}

func NewMessageService(s *server.Server, messages MessageStore) *MessageService {
	return &MessageService{server: s, messages: messages}
}

func (s *MessageService) List(ctx context.Context) ([]model.Message, error) {
	return s.messages.ListAll(ctx)
}

func (s *MessageService) ListByAccount(ctx context.Context, accountID int) ([]model.Message, error) {
	return s.messages.ListByAccount(ctx, accountID)
}

func (s *MessageService) Get(ctx context.Context, messageID int) (*model.Message, error) {
	return s.messages.GetByID(ctx, messageID)
}

func (s *MessageService) Create(ctx context.Context, message model.Message) (*model.Message, error) {
	return s.messages.Create(ctx, message)
}

func (s *MessageService) UpdateText(ctx context.Context, messageID int, text string) (*model.Message, error) {
	return s.messages.UpdateText(ctx, messageID, text)
}

func (s *MessageService) Delete(ctx context.Context, messageID int) (*model.Message, error) {
	return s.messages.DeleteByID(ctx, messageID)
}
