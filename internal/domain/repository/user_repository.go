package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
)

// UserRepository defines the persistence contract for users.
//
// Lookups return (nil, nil) when nothing matches; translating that into
// entity.ErrUserNotFound is the caller's job. Save is an upsert keyed by ID
// and must report a duplicate email as entity.ErrEmailTaken.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email entity.Email) (bool, error)
	Delete(ctx context.Context, id entity.UserID) error
	// FindAll returns one page ordered by creation time, newest first.
	// Pages are 1-based; a page past the end yields an empty slice.
	FindAll(ctx context.Context, page, perPage int) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
}
