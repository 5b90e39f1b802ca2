package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrVideoNotFound      = errors.New("video not found")
	ErrChannelNotFound    = errors.New("channel not found")
	ErrUnknownList        = errors.New("unknown list")

	ErrMissingName      = errors.New("name is required")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)
