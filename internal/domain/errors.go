package domain

import "errors"

var (
	ErrNotLoggedIn      = errors.New("user not logged in")
	ErrSessionNotFound  = errors.New("session not found")
	ErrMissingInput     = errors.New("required input is empty")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidResponse  = errors.New("invalid response payload")
)

// ActionError is the terminal outcome of a failed user action. Message is what the
// user sees; Err keeps the diagnostic cause.
type ActionError struct {
	Message string
	Err     error
}

func NewActionError(message string, err error) *ActionError {
	return &ActionError{Message: message, Err: err}
}

func (e *ActionError) Error() string {
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// UserMessage returns the user-facing message carried by err, if any.
func UserMessage(err error) (string, bool) {
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Message, true
	}

	return "", false
}
