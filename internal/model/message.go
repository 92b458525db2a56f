package model

import "fmt"

// MaxMessageLength is the longest message text accepted, in characters.
const MaxMessageLength = 254

// Message is a post on the board.
//
// PostedBy names an account but is not checked against the account table.
type Message struct {
	MessageID       int    `json:"message_id" db:"message_id"`
	PostedBy        int    `json:"posted_by" db:"posted_by"`
	MessageText     string `json:"message_text" db:"message_text" validate:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch" db:"time_posted_epoch"`
}

// Validate checks the text length in characters, not bytes.
func (m Message) Validate() error {
	return ValidateMessageText(m.MessageText)
}

// ValidateMessageText applies the message length rule to a bare text.
func ValidateMessageText(text string) error {
	if err := validate.Var(text, messageTextRule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	return nil
}
