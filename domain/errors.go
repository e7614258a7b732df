package domain

import "errors"

// Error kinds the program reports to the user instead of failing.
var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrRatesUnavailable = errors.New("rates not available")
)

// UserError carries the message shown to the operator for one of the error kinds above.
type UserError struct {
	Kind    error
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Kind
}

// Usage builds a UserError of the given kind
func Usage(kind error, message string) error {
	return &UserError{Kind: kind, Message: message}
}

// Reportable reports whether err is one of the kinds printed to the operator
func Reportable(err error) bool {
	return errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrRatesUnavailable)
}
