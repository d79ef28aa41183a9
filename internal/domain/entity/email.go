package entity

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailValidator = validator.New()

// Email is a validated, lower-cased email address.
type Email struct {
	value string
}

// NewEmail trims and lower-cases s and rejects anything that is not a valid address.
func NewEmail(s string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return Email{}, ErrInvalidEmail
	}
	if err := emailValidator.Var(v, "email,max=255"); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

// Equals compares normalized values.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// IsZero reports whether e was never constructed.
func (e Email) IsZero() bool { return e.value == "" }
