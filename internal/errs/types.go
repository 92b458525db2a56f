package errs

// FieldError points a validation failure at one request field.
//
//	{ "field": "message_text", "error": "must be at most 254 characters" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType enumerates the hints a client may act on.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional follow-up instruction for the client.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type every handler returns.
//
// Code is stable and machine-readable ("BAD_REQUEST"), Message is for
// humans. Override lets the global handler swap Message for the generic
// status text. Empty suppresses the body entirely: the response carries only
// Status, which is how the account and message endpoints report rejections.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`

	Empty bool `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, whatever its code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message

	return &clone
}

// WithEmptyBody returns a copy that is rendered as a bare status code. The
// message and field errors are kept for logging.
func (e *HTTPError) WithEmptyBody() *HTTPError {
	clone := *e
	clone.Empty = true

	return &clone
}
