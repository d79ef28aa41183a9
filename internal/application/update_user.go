package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/service"
)

type UpdateUserUseCase struct {
	repo    repository.UserRepository
	domain  *service.UserDomainService
	publish notifier
}

func NewUpdateUserUseCase(repo repository.UserRepository, domain *service.UserDomainService, pub EventPublisher, logger *logrus.Logger) *UpdateUserUseCase {
	return &UpdateUserUseCase{repo: repo, domain: domain, publish: notifier{pub: pub, logger: logger}}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, req UpdateUserRequest) (UserDTO, error) {
	user, err := findUser(ctx, uc.repo, req.ID)
	if err != nil {
		return UserDTO{}, err
	}

	email, err := entity.NewEmail(req.Email)
	if err != nil {
		return UserDTO{}, err
	}
	if err := uc.domain.EnsureEmailIsUniqueForUpdate(ctx, email, user); err != nil {
		return UserDTO{}, err
	}

	if err := user.UpdateProfile(req.Name, req.Email); err != nil {
		return UserDTO{}, err
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return UserDTO{}, err
	}

	out := toUserDTO(user)
	uc.publish.notify(ctx, UserUpdated, out)
	return out, nil
}
