package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/social-media-api/internal/errs"
	"github.com/deppfellow/social-media-api/internal/middleware"
	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/server"
	"github.com/labstack/echo/v4"
)

// AccountService is implemented by *service.AccountService.
type AccountService interface {
	Register(ctx context.Context, account model.Account) (*model.Account, error)
	Login(ctx context.Context, credentials model.Account) (*model.Account, error)
}

type AccountHandler struct {
	Handler
	accountService AccountService
}

func NewAccountHandler(s *server.Server, accountService AccountService) *AccountHandler {
	return &AccountHandler{
		Handler:        NewHandler(s),
		accountService: accountService,
	}
}

// Register answers POST /register. Every failure, whether a rule, a taken
// username or the database, is a 400 with no body.
func (h *AccountHandler) Register(c echo.Context, payload *model.RegisterAccountPayload) (*model.Account, error) {
	account, err := h.accountService.Register(c.Request().Context(), payload.ToAccount())
	if err != nil {
		middleware.GetLogger(c).Info().Err(err).Str("username", payload.Username).Msg("registration refused")
		return nil, errs.NewEmptyError(http.StatusBadRequest)
	}

	return account, nil
}

// Login answers POST /login. Every failure is a 401 with no body.
func (h *AccountHandler) Login(c echo.Context, payload *model.LoginPayload) (*model.Account, error) {
	account, err := h.accountService.Login(c.Request().Context(), payload.ToAccount())
	if err != nil {
		middleware.GetLogger(c).Info().Err(err).Str("username", payload.Username).Msg("login refused")
		return nil, errs.NewEmptyError(http.StatusUnauthorized)
	}

	return account, nil
}
