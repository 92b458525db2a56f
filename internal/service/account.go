package service

import (
	"context"

	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/server"
)

// AccountStore is implemented by *repository.AccountRepository.
type AccountStore interface {
	Register(ctx context.Context, account model.Account) (*model.Account, error)
	Login(ctx context.Context, credentials model.Account) (*model.Account, error)
}

type AccountService struct {
	server   *server.Server
	accounts AccountStore
}

func NewAccountService(s *server.Server, accounts AccountStore) *AccountService {
	return &AccountService{server: s, accounts: accounts}
}

func (s *AccountService) Register(ctx context.Context, account model.Account) (*model.Account, error) {
	return s.accounts.Register(ctx, account)
}

func (s *AccountService) Login(ctx context.Context, credentials model.Account) (*model.Account, error) {
	return s.accounts.Login(ctx, credentials)
}
