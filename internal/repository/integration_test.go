package repository

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/deppfellow/social-media-api/internal/database"
	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testDatabaseURLEnv names a disposable Postgres database. Its tables are
// truncated by every test.
const testDatabaseURLEnv = "SOCIAL_TEST_DATABASE_URL"

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(testDatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping database integration test", testDatabaseURLEnv)
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	require.NoError(t, database.MigrateDSN(ctx, &logger, dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE account, message RESTART IDENTITY`)
	require.NoError(t, err)

	return pool
}

func TestAccountRepositoryIntegration(t *testing.T) {
	pool := setupPool(t)
	repo := NewAccountRepository(pool, bcrypt.MinCost)
	ctx := context.Background()

	registered, err := repo.Register(ctx, model.Account{Username: "user", Password: "password"})
	require.NoError(t, err)
	require.Positive(t, registered.AccountID)

	_, err = repo.Register(ctx, model.Account{Username: "user", Password: "another"})
	require.ErrorIs(t, err, model.ErrUsernameTaken)

	loggedIn, err := repo.Login(ctx, model.Account{Username: "user", Password: "password"})
	require.NoError(t, err)
	require.Equal(t, *registered, *loggedIn)

	_, err = repo.Login(ctx, model.Account{Username: "USER", Password: "password"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = repo.Login(ctx, model.Account{Username: "user", Password: "Password"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestMessageRepositoryIntegration(t *testing.T) {
	pool := setupPool(t)
	repo := NewMessageRepository(pool)
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)

	first, err := repo.Create(ctx, model.Message{PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000})
	require.NoError(t, err)
	require.Positive(t, first.MessageID)

	_, err = repo.Create(ctx, model.Message{PostedBy: 2, MessageText: strings.Repeat("é", model.MaxMessageLength), TimePostedEpoch: 2000})
	require.NoError(t, err)

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byAccount, err := repo.ListByAccount(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []model.Message{*first}, byAccount)

	none, err := repo.ListByAccount(ctx, 999)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	got, err := repo.GetByID(ctx, first.MessageID)
	require.NoError(t, err)
	require.Equal(t, *first, *got)

	_, err = repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, model.ErrMessageNotFound)

	updated, err := repo.UpdateText(ctx, first.MessageID, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", updated.MessageText)
	require.Equal(t, first.TimePostedEpoch, updated.TimePostedEpoch)

	_, err = repo.UpdateText(ctx, 999, "edited")
	require.ErrorIs(t, err, model.ErrMessageNotFound)

	deleted, err := repo.DeleteByID(ctx, first.MessageID)
	require.NoError(t, err)
	require.Equal(t, *updated, *deleted)

	_, err = repo.DeleteByID(ctx, first.MessageID)
	require.ErrorIs(t, err, model.ErrMessageNotFound)
}

func TestConcurrentDeleteSucceedsOnce(t *testing.T) {
	pool := setupPool(t)
	repo := NewMessageRepository(pool)
	ctx := context.Background()

	message, err := repo.Create(ctx, model.Message{PostedBy: 1, MessageText: "race", TimePostedEpoch: 1})
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.DeleteByID(ctx, message.MessageID); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes)
}
