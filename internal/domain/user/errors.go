package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("this email is already registered")
	ErrUsernameTaken      = errors.New("this username is already taken")
	ErrInvalidUsername    = errors.New("username contains invalid characters")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrSelfSubscription  = errors.New("cannot subscribe to yourself")
	ErrAlreadySubscribed = errors.New("already subscribed to this author")
	ErrNotSubscribed     = errors.New("not subscribed to this author")
)
