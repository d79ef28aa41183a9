package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
)

type DeleteUserUseCase struct {
	repo    repository.UserRepository
	publish notifier
}

func NewDeleteUserUseCase(repo repository.UserRepository, pub EventPublisher, logger *logrus.Logger) *DeleteUserUseCase {
	return &DeleteUserUseCase{repo: repo, publish: notifier{pub: pub, logger: logger}}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id string) error {
	user, err := findUser(ctx, uc.repo, id)
	if err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, user.ID()); err != nil {
		return err
	}
	uc.publish.notify(ctx, UserDeleted, toUserDTO(user))
	return nil
}
