package domain

import "errors"

var (
	ErrEmailTaken         = errors.New("user with the email already exists")
	ErrInvalidCredentials = errors.New("username or password is not correct")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrNotNoteOwner       = errors.New("note belongs to another user")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongTokenKind     = errors.New("wrong token kind")
	ErrNameNotFull        = errors.New("name must be a full name")
	ErrWeakPassword       = errors.New("password must be alphanumeric and at least 8 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyText          = errors.New("text is required")
	ErrInternal           = errors.New("internal server error")
)
