package handler

import (
	"github.com/deppfellow/social-media-api/internal/server"
	"github.com/deppfellow/social-media-api/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Account *AccountHandler
	Message *MessageHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Account: NewAccountHandler(s, services.Account),
		Message: NewMessageHandler(s, services.Message),
	}
}
