package service

import (
	"github.com/deppfellow/social-media-api/internal/repository"
	"github.com/deppfellow/social-media-api/internal/server"
)

type Services struct {
	Account *AccountService
	Message *MessageService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Account: NewAccountService(s, repos.Account),
		Message: NewMessageService(s, repos.Message),
	}, nil
}
