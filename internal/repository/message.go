package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/social-media-api/internal/model"
	"github.com/deppfellow/social-media-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const messageColumns = `message_id, posted_by, message_text, time_posted_epoch`

const (
	selectAllMessagesSQL = `SELECT ` + messageColumns + ` FROM message`

	selectMessagesByAccountSQL = `SELECT ` + messageColumns + ` FROM message WHERE posted_by = $1`

	selectMessageByIDSQL = `SELECT ` + messageColumns + ` FROM message WHERE message_id = $1`

	insertMessageSQL = `
		INSERT INTO message (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id`

	updateMessageTextSQL = `
		UPDATE message
		SET message_text = $1
		WHERE message_id = $2
		RETURNING ` + messageColumns

	deleteMessageSQL = `
		DELETE FROM message
		WHERE message_id = $1
		RETURNING ` + messageColumns
)

type MessageRepository struct {
	db DB
}

func NewMessageRepository(db DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// ListAll returns every message in storage order. The slice is never nil.
func (r *MessageRepository) ListAll(ctx context.Context) ([]model.Message, error) {
	messages, err := r.queryMessages(ctx, selectAllMessagesSQL)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list messages")
		return []model.Message{}, fmt.Errorf("select messages: %w", err)
	}

	return messages, nil
}

// ListByAccount returns the messages whose posted_by equals accountID.
func (r *MessageRepository) ListByAccount(ctx context.Context, accountID int) ([]model.Message, error) {
	messages, err := r.queryMessages(ctx, selectMessagesByAccountSQL, accountID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("account_id", accountID).Msg("failed to list account messages")
		return []model.Message{}, fmt.Errorf("select messages by account: %w", err)
	}

	return messages, nil
}

// Create stores message and returns it with its generated id.
func (r *MessageRepository) Create(ctx context.Context, message model.Message) (*model.Message, error) {
	logger := zerolog.Ctx(ctx)

	if err := message.Validate(); err != nil {
		logger.Debug().Err(err).Int("posted_by", message.PostedBy).Msg("message rejected by validation")
		return nil, err
	}

	err := r.db.QueryRow(ctx, insertMessageSQL, message.PostedBy, message.MessageText, message.TimePostedEpoch).
		Scan(&message.MessageID)
	if err != nil {
		if sqlerr.IsConstraintViolation(err) {
			logger.Warn().Err(err).Int("posted_by", message.PostedBy).Msg("message rejected by database constraint")
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidMessage, err)
		}

		logger.Error().Err(err).Int("posted_by", message.PostedBy).Msg("failed to insert message")
		return nil, fmt.Errorf("insert message: %w", err)
	}

	return &message, nil
}

// GetByID returns model.ErrMessageNotFound when no row has the id.
func (r *MessageRepository) GetByID(ctx context.Context, messageID int) (*model.Message, error) {
	message, err := r.queryMessage(ctx, selectMessageByIDSQL, messageID)
	if err != nil {
		return nil, r.singleRowError(ctx, err, messageID, "select message")
	}

	return message, nil
}

// UpdateText replaces the text of one message and returns the updated row.
// Invalid text fails with model.ErrInvalidMessage and an unknown id with
// model.ErrMessageNotFound.
func (r *MessageRepository) UpdateText(ctx context.Context, messageID int, text string) (*model.Message, error) {
	if err := model.ValidateMessageText(text); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Int("message_id", messageID).Msg("message update rejected by validation")
		return nil, err
	}

	message, err := r.queryMessage(ctx, updateMessageTextSQL, text, messageID)
	if err != nil {
		return nil, r.singleRowError(ctx, err, messageID, "update message")
	}

	return message, nil
}

// DeleteByID removes one message and returns it as it was. Reading and
// deleting happen in the same statement, so two concurrent deletes of one id
// cannot both report success.
func (r *MessageRepository) DeleteByID(ctx context.Context, messageID int) (*model.Message, error) {
	message, err := r.queryMessage(ctx, deleteMessageSQL, messageID)
	if err != nil {
		return nil, r.singleRowError(ctx, err, messageID, "delete message")
	}

	return message, nil
}

func (r *MessageRepository) queryMessages(ctx context.Context, sql string, args ...any) ([]model.Message, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	messages, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Message])
	if err != nil {
		return nil, err
	}

	if messages == nil {
		messages = []model.Message{}
	}

	return messages, nil
}

func (r *MessageRepository) queryMessage(ctx context.Context, sql string, args ...any) (*model.Message, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Message])
}

// singleRowError turns pgx.ErrNoRows into model.ErrMessageNotFound and wraps
// anything else, logging each at its own level.
func (r *MessageRepository) singleRowError(ctx context.Context, err error, messageID int, op string) error {
	logger := zerolog.Ctx(ctx)

	if errors.Is(err, pgx.ErrNoRows) {
		logger.Debug().Int("message_id", messageID).Str("op", op).Msg("message not found")
		return model.ErrMessageNotFound
	}

	logger.Error().Err(err).Int("message_id", messageID).Str("op", op).Msg("message query failed")
	return fmt.Errorf("%s: %w", op, err)
}
