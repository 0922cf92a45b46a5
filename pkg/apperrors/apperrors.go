package apperrors

import "errors"

// Kind classifies an application error so callers can branch on the
// category instead of matching message text.
type Kind int

const (
	// KindValidation marks a business-rule precondition violation detected
	// before any store call.
	KindValidation Kind = iota + 1
	// KindNotFound marks a dependent operation on an id that does not exist.
	KindNotFound
)

// Error is a tagged application error. Store failures are never wrapped in
// an Error: they propagate unchanged so the boundary maps them to 5xx.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation builds a KindValidation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

// IsNotFound reports whether err is (or wraps) a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}
