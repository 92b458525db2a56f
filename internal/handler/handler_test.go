package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/social-media-api/internal/config"
	"github.com/deppfellow/social-media-api/internal/middleware"
	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type fakeAccountService struct {
	register func(ctx context.Context, account model.Account) (*model.Account, error)
	login    func(ctx context.Context, credentials model.Account) (*model.Account, error)
}

func (f *fakeAccountService) Register(ctx context.Context, account model.Account) (*model.Account, error) {
	return f.register(ctx, account)
}

func (f *fakeAccountService) Login(ctx context.Context, credentials model.Account) (*model.Account, error) {
	return f.login(ctx, credentials)
}

type fakeMessageService struct {
	list          func(ctx context.Context) ([]model.Message, error)
	listByAccount func(ctx context.Context, accountID int) ([]model.Message, error)
	get           func(ctx context.Context, messageID int) (*model.Message, error)
	create        func(ctx context.Context, message model.Message) (*model.Message, error)
	updateText    func(ctx context.Context, messageID int, text string) (*model.Message, error)
	delete        func(ctx context.Context, messageID int) (*model.Message, error)
}

func (f *fakeMessageService) List(ctx context.Context) ([]model.Message, error) {
	return f.list(ctx)
}

func (f *fakeMessageService) ListByAccount(ctx context.Context, accountID int) ([]model.Message, error) {
	return f.listByAccount(ctx, accountID)
}

func (f *fakeMessageService) Get(ctx context.Context, messageID int) (*model.Message, error) {
	return f.get(ctx, messageID)
}

func (f *fakeMessageService) Create(ctx context.Context, message model.Message) (*model.Message, error) {
	return f.create(ctx, message)
}

func (f *fakeMessageService) UpdateText(ctx context.Context, messageID int, text string) (*model.Message, error) {
	return f.updateText(ctx, messageID, text)
}

func (f *fakeMessageService) Delete(ctx context.Context, messageID int) (*model.Message, error) {
	return f.delete(ctx, messageID)
}

// newTestRouter mounts the account and message routes the way the
// production router does, minus the rate limiter and tracing.
func newTestRouter(accounts AccountService, messages MessageService) *echo.Echo {
	logger := zerolog.Nop()
	s := &server.Server{Config: &config.Config{}, Logger: &logger}

	accountHandler := NewAccountHandler(s, accounts)
	messageHandler := NewMessageHandler(s, messages)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	e.Use(middleware.RequestID(), middleware.NewContextEnhancer(s).EnhanceContext())

	e.POST("/register", Handle(accountHandler.Handler, accountHandler.Register, http.StatusOK, &model.RegisterAccountPayload{}))
	e.POST("/login", Handle(accountHandler.Handler, accountHandler.Login, http.StatusOK, &model.LoginPayload{}))

	e.GET("/messages", Handle(messageHandler.Handler, messageHandler.ListMessages, http.StatusOK, &model.EmptyPayload{}))
	e.POST("/messages", Handle(messageHandler.Handler, messageHandler.CreateMessage, http.StatusOK, &model.CreateMessagePayload{}))
	e.GET("/messages/:message_id", HandleOptional(messageHandler.Handler, messageHandler.GetMessage, http.StatusOK, &model.MessageIDPayload{}))
	e.PATCH("/messages/:message_id", Handle(messageHandler.Handler, messageHandler.UpdateMessage, http.StatusOK, &model.UpdateMessagePayload{}))
	e.DELETE("/messages/:message_id", HandleOptional(messageHandler.Handler, messageHandler.DeleteMessage, http.StatusOK, &model.MessageIDPayload{}))
	e.GET("/accounts/:account_id/messages", Handle(messageHandler.Handler, messageHandler.ListAccountMessages, http.StatusOK, &model.AccountIDPayload{}))

	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func failIfCalled(t *testing.T) func() {
	return func() {
		t.Helper()
		t.Fatal("service must not be called")
	}
}

var errStorage = errors.New("connection refused")
