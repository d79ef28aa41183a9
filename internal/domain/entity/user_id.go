package entity

import "github.com/google/uuid"

// UserID is the identity of a User: a random UUID in canonical textual form.
type UserID struct {
	value string
}

// NewUserID generates a fresh random (v4) identifier.
func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// ParseUserID accepts only the canonical 8-4-4-4-12 hex form.
// uuid.Parse also accepts urn and braced forms, hence the length check.
func ParseUserID(s string) (UserID, error) {
	if len(s) != 36 {
		return UserID{}, ErrInvalidUserID
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, ErrInvalidUserID
	}
	return UserID{value: id.String()}, nil
}

func (id UserID) Value() string  { return id.value }
func (id UserID) String() string { return id.value }

func (id UserID) Equals(other UserID) bool { return id.value == other.value }
