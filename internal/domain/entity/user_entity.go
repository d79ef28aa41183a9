package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oksasatya/go-ddd-user-management/pkg/helpers"
)

const (
	minNameLength     = 3
	maxPasswordLength = 72 // bcrypt input limit
)

// now is replaced in tests. Timestamps are truncated to microseconds so they
// survive a round-trip through Postgres timestamptz unchanged.
var now = func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	id        UserID
	name      string
	email     Email
	password  string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser validates the input, hashes the password and stamps both timestamps
// with the same instant.
func NewUser(name, email, password string) (*User, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	ts := now()
	return &User{
		id:        NewUserID(),
		name:      n,
		email:     e,
		password:  hash,
		createdAt: ts,
		updatedAt: ts,
	}, nil
}

// RehydrateUser rebuilds a User read from storage. The hash is taken as is.
func RehydrateUser(id UserID, name string, email Email, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &User{
		id:        id,
		name:      n,
		email:     email,
		password:  passwordHash,
		createdAt: createdAt.UTC(),
		updatedAt: updatedAt.UTC(),
	}, nil
}

// UpdateProfile replaces name and email. On error the user is left untouched.
func (u *User) UpdateProfile(name, email string) error {
	n, err := validateName(name)
	if err != nil {
		return err
	}
	e, err := NewEmail(email)
	if err != nil {
		return err
	}
	u.name = n
	u.email = e
	u.updatedAt = now()
	return nil
}

// ChangePassword re-hashes the credential.
func (u *User) ChangePassword(plain string) error {
	hash, err := hashPassword(plain)
	if err != nil {
		return err
	}
	u.password = hash
	u.updatedAt = now()
	return nil
}

// VerifyPassword reports whether plain matches the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return helpers.CompareHashAndPassword(u.password, plain)
}

func (u *User) ID() UserID           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.password }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func validateName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ErrNameEmpty
	}
	if utf8.RuneCountInString(n) < minNameLength {
		return "", ErrNameTooShort
	}
	return n, nil
}

func hashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrPasswordEmpty
	}
	if len(plain) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}
	return helpers.HashPassword(plain)
}
