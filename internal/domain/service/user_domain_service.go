package service

import (
	"context"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
)

// UserDomainService enforces invariants that span more than one user.
// Both checks are check-then-act; the storage unique constraint on email is
// what closes the window between the check and the write.
type UserDomainService struct {
	repo repository.UserRepository
}

func NewUserDomainService(repo repository.UserRepository) *UserDomainService {
	return &UserDomainService{repo: repo}
}

// EnsureEmailIsUnique fails with entity.ErrEmailTaken if any user owns email.
func (s *UserDomainService) EnsureEmailIsUnique(ctx context.Context, email entity.Email) error {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return entity.ErrEmailTaken
	}
	return nil
}

// EnsureEmailIsUniqueForUpdate fails only if a different user owns email.
func (s *UserDomainService) EnsureEmailIsUniqueForUpdate(ctx context.Context, email entity.Email, current *entity.User) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil && !existing.ID().Equals(current.ID()) {
		return entity.ErrEmailTakenByOther
	}
	return nil
}
