package entity

import "errors"

// Error kinds. Every domain error unwraps to exactly one of these so the
// interface layer can map it without knowing the concrete error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Error is a domain error tagged with its kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

var (
	ErrNameEmpty       = newError(ErrValidation, "name cannot be empty")
	ErrNameTooShort    = newError(ErrValidation, "name must be at least 3 characters")
	ErrInvalidEmail    = newError(ErrValidation, "invalid email address")
	ErrInvalidUserID   = newError(ErrValidation, "invalid user id")
	ErrPasswordEmpty   = newError(ErrValidation, "password cannot be empty")
	ErrPasswordTooLong = newError(ErrValidation, "password must be at most 72 bytes")

	ErrUserNotFound = newError(ErrNotFound, "user not found")

	ErrEmailTaken        = newError(ErrConflict, "email already in use")
	ErrEmailTakenByOther = newError(ErrConflict, "email already in use by another user")
)
