package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/service"
)

type CreateUserUseCase struct {
	repo    repository.UserRepository
	domain  *service.UserDomainService
	publish notifier
}

func NewCreateUserUseCase(repo repository.UserRepository, domain *service.UserDomainService, pub EventPublisher, logger *logrus.Logger) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo, domain: domain, publish: notifier{pub: pub, logger: logger}}
}

// Execute registers a new user. Email shape and uniqueness are checked
// before the password is hashed.
func (uc *CreateUserUseCase) Execute(ctx context.Context, req CreateUserRequest) (UserDTO, error) {
	email, err := entity.NewEmail(req.Email)
	if err != nil {
		return UserDTO{}, err
	}
	if err := uc.domain.EnsureEmailIsUnique(ctx, email); err != nil {
		return UserDTO{}, err
	}

	user, err := entity.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		return UserDTO{}, err
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return UserDTO{}, err
	}

	out := toUserDTO(user)
	uc.publish.notify(ctx, UserCreated, out)
	return out, nil
}
