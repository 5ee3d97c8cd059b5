package app

import "errors"

// Error categories callers map to transport status codes.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// ValidationError reports input the caller must fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// statusError pairs a category with a message fit for end users.
type statusError struct {
	kind error
	msg  string
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.kind }

func unauthorized(msg string) error { return &statusError{kind: ErrUnauthorized, msg: msg} }
func notFound(msg string) error     { return &statusError{kind: ErrNotFound, msg: msg} }

// Message returns the user-facing text of a categorized error.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.msg
	}
	return err.Error()
}
