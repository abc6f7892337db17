package session

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password is required")
	ErrMissingDeviceID = errors.New("device id is required")

	ErrSubmitInProgress   = errors.New("sign in already in progress")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
	ErrLocked             = errors.New("too many failed attempts")
)

// LockedError вход заблокирован, Remaining - сколько осталось ждать.
type LockedError struct {
	Remaining time.Duration
	cause     error
}

func (e *LockedError) Error() string {
	msg := fmt.Sprintf("%s, retry in %s", ErrLocked, e.Remaining.Round(time.Second))
	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

func (e *LockedError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrLocked}
	}
	return []error{ErrLocked, e.cause}
}
