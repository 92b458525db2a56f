package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsInvalidTextWithoutQuerying(t *testing.T) {
	repo := NewMessageRepository(&fakeDB{t: t})
	ctx := context.Background()

	_, err := repo.Create(ctx, model.Message{PostedBy: 1, MessageText: ""})
	require.ErrorIs(t, err, model.ErrInvalidMessage)

	_, err = repo.Create(ctx, model.Message{PostedBy: 1, MessageText: strings.Repeat("a", 255)})
	require.ErrorIs(t, err, model.ErrInvalidMessage)
}

func TestCreateReturnsGeneratedID(t *testing.T) {
	db := &fakeDB{t: t, queryRow: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, []any{1, "hello", int64(1000)}, args)
		return fakeRow{values: []any{9}}
	}}
	repo := NewMessageRepository(db)

	message, err := repo.Create(context.Background(), model.Message{PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000})
	require.NoError(t, err)
	require.Equal(t, model.Message{MessageID: 9, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000}, *message)
}

func TestCreateConstraintViolationIsInvalidMessage(t *testing.T) {
	db := &fakeDB{t: t, queryRow: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: &pgconn.PgError{Code: "23514"}}
	}}
	repo := NewMessageRepository(db)

	_, err := repo.Create(context.Background(), model.Message{PostedBy: 1, MessageText: "hello"})
	require.ErrorIs(t, err, model.ErrInvalidMessage)
}

func TestUpdateTextRejectsInvalidTextWithoutQuerying(t *testing.T) {
	repo := NewMessageRepository(&fakeDB{t: t})

	_, err := repo.UpdateText(context.Background(), 1, "")
	require.ErrorIs(t, err, model.ErrInvalidMessage)
}

func TestQueryFailuresAreNotReportedAsNotFound(t *testing.T) {
	cause := errors.New("connection refused")
	db := &fakeDB{t: t, query: func(context.Context, string, ...any) (pgx.Rows, error) {
		return nil, cause
	}}
	repo := NewMessageRepository(db)
	ctx := context.Background()

	messages, err := repo.ListAll(ctx)
	require.ErrorIs(t, err, cause)
	require.NotNil(t, messages)
	require.Empty(t, messages)

	messages, err = repo.ListByAccount(ctx, 1)
	require.ErrorIs(t, err, cause)
	require.NotNil(t, messages)

	_, err = repo.GetByID(ctx, 1)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, model.ErrMessageNotFound)

	_, err = repo.UpdateText(ctx, 1, "text")
	require.ErrorIs(t, err, cause)

	_, err = repo.DeleteByID(ctx, 1)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, model.ErrMessageNotFound)
}
