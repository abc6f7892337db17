package auth

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUnknownRole  = errors.New("user has unknown role")
)
