package model

// Request payloads. Path parameters are bound through the `param` tag and
// never read from the body.

// RegisterAccountPayload is the body of POST /register.
type RegisterAccountPayload struct {
	Username string `json:"username" validate:"min=1"`
	Password string `json:"password" validate:"min=4"`
}

func (p *RegisterAccountPayload) Validate() error {
	return validate.Struct(p)
}

func (p *RegisterAccountPayload) ToAccount() Account {
	return Account{Username: p.Username, Password: p.Password}
}

// LoginPayload is the body of POST /login. It has no shape rules: any
// mismatch is reported as bad credentials.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (p *LoginPayload) Validate() error {
	return nil
}

func (p *LoginPayload) ToAccount() Account {
	return Account{Username: p.Username, Password: p.Password}
}

// CreateMessagePayload is the body of POST /messages.
type CreateMessagePayload struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text" validate:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

func (p *CreateMessagePayload) Validate() error {
	return validate.Struct(p)
}

func (p *CreateMessagePayload) ToMessage() Message {
	return Message{
		PostedBy:        p.PostedBy,
		MessageText:     p.MessageText,
		TimePostedEpoch: p.TimePostedEpoch,
	}
}

// UpdateMessagePayload carries PATCH /messages/:message_id. Only
// message_text is read from the body.
type UpdateMessagePayload struct {
	MessageID   int    `param:"message_id" json:"-"`
	MessageText string `json:"message_text" validate:"message_text"`
}

func (p *UpdateMessagePayload) Validate() error {
	return validate.Struct(p)
}

// MessageIDPayload addresses one message by path parameter.
type MessageIDPayload struct {
	MessageID int `param:"message_id" json:"-"`
}

func (p *MessageIDPayload) Validate() error {
	return nil
}

// AccountIDPayload addresses one account by path parameter.
type AccountIDPayload struct {
	AccountID int `param:"account_id" json:"-"`
}

func (p *AccountIDPayload) Validate() error {
	return nil
}

// EmptyPayload is used by routes that read nothing from the request.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}
