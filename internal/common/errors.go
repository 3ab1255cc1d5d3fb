// Package common holds the error types and logging helpers shared by grocer's commands.
package common

import (
	"errors"
)

// ErrInvalidConfig marks a setting that cannot be used as given.
var ErrInvalidConfig = errors.New("invalid configuration")

// UserError pairs a message for the person at the terminal with its underlying cause.
type UserError struct {
	Err         error
	UserMessage string
}

// NewUserError wraps err with a message for the user. err may be nil.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.UserMessage
	}
	return e.UserMessage + ": " + e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}
