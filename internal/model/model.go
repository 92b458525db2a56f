// Package model defines the account and message entities, the request
// payloads that carry them over HTTP, and the errors the stores report.
package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// messageTextRule is the validate alias for message text length, so the
// limit lives in MaxMessageLength only.
const messageTextRule = "message_text"

// validate is shared because validator caches struct metadata per type.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterAlias(messageTextRule, fmt.Sprintf("min=1,max=%d", MaxMessageLength))
	return v
}

// Store outcomes. Anything else a repository returns is a persistence
// failure wrapped around the driver error.
var (
	ErrInvalidAccount     = errors.New("account username must be non-empty and password at least 4 characters")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("username or password does not match")
	ErrInvalidMessage     = fmt.Errorf("message text must be between 1 and %d characters", MaxMessageLength)
	ErrMessageNotFound    = errors.New("message not found")
)
