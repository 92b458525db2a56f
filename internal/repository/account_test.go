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
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterRejectsInvalidAccountWithoutQuerying(t *testing.T) {
	repo := NewAccountRepository(&fakeDB{t: t}, bcrypt.MinCost)

	_, err := repo.Register(context.Background(), model.Account{Username: "", Password: "password"})
	require.ErrorIs(t, err, model.ErrInvalidAccount)

	_, err = repo.Register(context.Background(), model.Account{Username: "user", Password: "abc"})
	require.ErrorIs(t, err, model.ErrInvalidAccount)
}

func TestRegisterStoresHashAndReturnsSubmittedPassword(t *testing.T) {
	var storedHash string

	db := &fakeDB{t: t, queryRow: func(_ context.Context, _ string, args ...any) pgx.Row {
		require.Equal(t, "user", args[0])
		storedHash = args[1].(string)
		return fakeRow{values: []any{42}}
	}}
	repo := NewAccountRepository(db, bcrypt.MinCost)

	account, err := repo.Register(context.Background(), model.Account{Username: "user", Password: "password"})
	require.NoError(t, err)

	require.Equal(t, model.Account{AccountID: 42, Username: "user", Password: "password"}, *account)
	require.NotEqual(t, "password", storedHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), passwordDigest("password")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := &fakeDB{t: t, queryRow: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: &pgconn.PgError{Code: "23505", ConstraintName: "account_username_key"}}
	}}
	repo := NewAccountRepository(db, bcrypt.MinCost)

	_, err := repo.Register(context.Background(), model.Account{Username: "user", Password: "password"})
	require.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestRegisterPersistenceFailureIsWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	db := &fakeDB{t: t, queryRow: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{err: cause}
	}}
	repo := NewAccountRepository(db, bcrypt.MinCost)

	_, err := repo.Register(context.Background(), model.Account{Username: "user", Password: "password"})
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, model.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest("password"), bcrypt.MinCost)
	require.NoError(t, err)

	db := &fakeDB{t: t, queryRow: func(_ context.Context, _ string, args ...any) pgx.Row {
		if args[0] != "user" {
			return fakeRow{err: pgx.ErrNoRows}
		}
		return fakeRow{values: []any{7, "user", string(hash)}}
	}}
	repo := NewAccountRepository(db, bcrypt.MinCost)
	ctx := context.Background()

	account, err := repo.Login(ctx, model.Account{Username: "user", Password: "password"})
	require.NoError(t, err)
	require.Equal(t, model.Account{AccountID: 7, Username: "user", Password: "password"}, *account)

	_, err = repo.Login(ctx, model.Account{Username: "user", Password: "wrong"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = repo.Login(ctx, model.Account{Username: "nobody", Password: "password"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestNewAccountRepositoryClampsCost(t *testing.T) {
	require.Equal(t, bcrypt.DefaultCost, NewAccountRepository(nil, 0).bcryptCost)
	require.Equal(t, bcrypt.DefaultCost, NewAccountRepository(nil, 99).bcryptCost)
	require.Equal(t, bcrypt.MinCost, NewAccountRepository(nil, bcrypt.MinCost).bcryptCost)
}

func TestLongPasswordRegistersAndLogsIn(t *testing.T) {
	var (
		storedID   int
		storedHash string
	)

	db := &fakeDB{t: t, queryRow: func(_ context.Context, sql string, args ...any) pgx.Row {
		if sql == insertAccountSQL {
			storedID = 3
			storedHash = args[1].(string)
			return fakeRow{values: []any{storedID}}
		}
		return fakeRow{values: []any{storedID, "alice", storedHash}}
	}}
	repo := NewAccountRepository(db, bcrypt.MinCost)
	ctx := context.Background()

	password := strings.Repeat("p", 80)

	account, err := repo.Register(ctx, model.Account{Username: "alice", Password: password})
	require.NoError(t, err)
	require.Equal(t, model.Account{AccountID: 3, Username: "alice", Password: password}, *account)

	loggedIn, err := repo.Login(ctx, model.Account{Username: "alice", Password: password})
	require.NoError(t, err)
	require.Equal(t, 3, loggedIn.AccountID)

	// Passwords sharing their first 72 bytes must still differ.
	_, err = repo.Login(ctx, model.Account{Username: "alice", Password: strings.Repeat("p", 79) + "q"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}
