package repository

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	insertAccountSQL = `
		INSERT INTO account (username, password)
		VALUES ($1, $2)
		RETURNING account_id`

	selectAccountByUsernameSQL = `
		SELECT account_id, username, password
		FROM account
		WHERE username = $1`
)

type AccountRepository struct {
	db         DB
	bcryptCost int
}

// NewAccountRepository falls back to bcrypt.DefaultCost when cost is out of
// bcrypt's accepted range.
func NewAccountRepository(db DB, bcryptCost int) *AccountRepository {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return &AccountRepository{db: db, bcryptCost: bcryptCost}
}

// Register stores a new account and returns it with its generated id.
//
// It fails with model.ErrInvalidAccount before touching the database when the
// username is empty or the password is shorter than four characters, and with
// model.ErrUsernameTaken when the username already exists.
func (r *AccountRepository) Register(ctx context.Context, account model.Account) (*model.Account, error) {
	logger := zerolog.Ctx(ctx)

	if err := account.Validate(); err != nil {
		logger.Debug().Err(err).Str("username", account.Username).Msg("account rejected by validation")
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword(passwordDigest(account.Password), r.bcryptCost)
	if err != nil {
		logger.Error().Err(err).Str("username", account.Username).Msg("failed to hash password")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	err = r.db.QueryRow(ctx, insertAccountSQL, account.Username, string(hash)).Scan(&account.AccountID)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			logger.Debug().Str("username", account.Username).Msg("username already registered")
			return nil, model.ErrUsernameTaken
		}

		logger.Error().Err(err).Str("username", account.Username).Msg("failed to insert account")
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return &account, nil
}

// Login returns the account whose username matches exactly and whose stored
// hash matches the submitted password. A missing username and a wrong
// password are both model.ErrInvalidCredentials.
func (r *AccountRepository) Login(ctx context.Context, credentials model.Account) (*model.Account, error) {
	logger := zerolog.Ctx(ctx)

	var (
		stored model.Account
		hash   string
	)

	err := r.db.QueryRow(ctx, selectAccountByUsernameSQL, credentials.Username).
		Scan(&stored.AccountID, &stored.Username, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.Debug().Str("username", credentials.Username).Msg("login for unknown username")
			return nil, model.ErrInvalidCredentials
		}

		logger.Error().Err(err).Str("username", credentials.Username).Msg("failed to look up account")
		return nil, fmt.Errorf("select account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), passwordDigest(credentials.Password)); err != nil {
		logger.Debug().Int("account_id", stored.AccountID).Msg("login with wrong password")
		return nil, model.ErrInvalidCredentials
	}

	stored.Password = credentials.Password

	return &stored, nil
}

// passwordDigest is what bcrypt actually sees: the base64 SHA-256 of the
// password. It is 44 bytes for any input, so passwords of any length fit
// under bcrypt's 72-byte limit without being truncated.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
