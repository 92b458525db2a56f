package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountValidate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{name: "valid", account: Account{Username: "u", Password: "pass"}},
		{name: "empty username", account: Account{Username: "", Password: "password"}, wantErr: true},
		{name: "short password", account: Account{Username: "user", Password: "abc"}, wantErr: true},
		{name: "multibyte password counts characters", account: Account{Username: "user", Password: "äöüß"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAccount)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateMessageText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "single character", text: "a"},
		{name: "at limit", text: strings.Repeat("a", MaxMessageLength)},
		{name: "empty", text: "", wantErr: true},
		{name: "over limit", text: strings.Repeat("a", MaxMessageLength+1), wantErr: true},
		{name: "multibyte at limit", text: strings.Repeat("é", MaxMessageLength)},
		{name: "multibyte over limit", text: strings.Repeat("é", MaxMessageLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Message{MessageText: tt.text}.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMessage)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPayloadValidation(t *testing.T) {
	require.Error(t, (&RegisterAccountPayload{Username: "", Password: "1234"}).Validate())
	require.NoError(t, (&RegisterAccountPayload{Username: "a", Password: "1234"}).Validate())

	require.NoError(t, (&LoginPayload{}).Validate())

	require.Error(t, (&CreateMessagePayload{MessageText: ""}).Validate())
	require.NoError(t, (&CreateMessagePayload{MessageText: "hello"}).Validate())

	require.Error(t, (&UpdateMessagePayload{MessageID: 1, MessageText: strings.Repeat("x", 255)}).Validate())
	require.NoError(t, (&UpdateMessagePayload{MessageID: 1, MessageText: "edited"}).Validate())
}

func TestPayloadConversion(t *testing.T) {
	message := (&CreateMessagePayload{PostedBy: 7, MessageText: "hi", TimePostedEpoch: 1000}).ToMessage()

	require.Equal(t, Message{PostedBy: 7, MessageText: "hi", TimePostedEpoch: 1000}, message)
	require.Equal(t, Account{Username: "u", Password: "p"}, (&LoginPayload{Username: "u", Password: "p"}).ToAccount())
}

func TestMessageTextRuleIsSharedByAllMessageTypes(t *testing.T) {
	atLimit := strings.Repeat("a", MaxMessageLength)
	overLimit := strings.Repeat("a", MaxMessageLength+1)

	checks := map[string]func(text string) error{
		"message":        func(text string) error { return validate.Struct(Message{MessageText: text}) },
		"create payload": func(text string) error { return (&CreateMessagePayload{MessageText: text}).Validate() },
		"update payload": func(text string) error { return (&UpdateMessagePayload{MessageText: text}).Validate() },
		"bare text":      ValidateMessageText,
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, check(atLimit))
			require.Error(t, check(overLimit))
			require.Error(t, check(""))
		})
	}

	require.Contains(t, ErrInvalidMessage.Error(), "254")
}
