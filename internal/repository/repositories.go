package repository

import (
	"github.com/deppfellow/social-media-api/internal/server"
)

// Repositories groups every repository so services receive one value.
type Repositories struct {
	Account *AccountRepository
	Message *MessageRepository
}

// NewRepositories builds all repositories on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Account: NewAccountRepository(s.DB.Pool, s.Config.Auth.BcryptCost),
		Message: NewMessageRepository(s.DB.Pool),
	}
}
