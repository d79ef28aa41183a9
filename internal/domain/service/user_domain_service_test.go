package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/service"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/memory"
)

func seed(t *testing.T, repo *memory.UserRepository, name, email string) *entity.User {
	t.Helper()
	u, err := entity.NewUser(name, email, "password123")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

func email(t *testing.T, s string) entity.Email {
	t.Helper()
	e, err := entity.NewEmail(s)
	require.NoError(t, err)
	return e
}

func TestEnsureEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc := service.NewUserDomainService(repo)
	seed(t, repo, "John Doe", "john@example.com")

	require.NoError(t, svc.EnsureEmailIsUnique(ctx, email(t, "jane@example.com")))

	err := svc.EnsureEmailIsUnique(ctx, email(t, "JOHN@example.com"))
	require.ErrorIs(t, err, entity.ErrEmailTaken)
	assert.ErrorIs(t, err, entity.ErrConflict)
	assert.Contains(t, err.Error(), "email already in use")
}

func TestEnsureEmailIsUniqueForUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	svc := service.NewUserDomainService(repo)
	john := seed(t, repo, "John Doe", "john@example.com")
	jane := seed(t, repo, "Jane Roe", "jane@example.com")

	// keeping your own email is not a collision
	require.NoError(t, svc.EnsureEmailIsUniqueForUpdate(ctx, john.Email(), john))
	require.NoError(t, svc.EnsureEmailIsUniqueForUpdate(ctx, email(t, "free@example.com"), john))

	err := svc.EnsureEmailIsUniqueForUpdate(ctx, jane.Email(), john)
	require.ErrorIs(t, err, entity.ErrEmailTakenByOther)
	assert.ErrorIs(t, err, entity.ErrConflict)
}

type failingRepo struct {
	*memory.UserRepository
	err error
}

func (r failingRepo) ExistsByEmail(context.Context, entity.Email) (bool, error) { return false, r.err }

func (r failingRepo) FindByEmail(context.Context, entity.Email) (*entity.User, error) {
	return nil, r.err
}

func TestDomainService_PropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	svc := service.NewUserDomainService(failingRepo{UserRepository: memory.NewUserRepository(), err: boom})
	u, err := entity.NewUser("John Doe", "john@example.com", "password123")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.EnsureEmailIsUnique(ctx, u.Email()), boom)
	assert.ErrorIs(t, svc.EnsureEmailIsUniqueForUpdate(ctx, u.Email(), u), boom)
}
