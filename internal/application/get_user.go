package application

import (
	"context"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
)

type GetUserUseCase struct {
	repo repository.UserRepository
}

func NewGetUserUseCase(repo repository.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{repo: repo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id string) (UserDTO, error) {
	user, err := findUser(ctx, uc.repo, id)
	if err != nil {
		return UserDTO{}, err
	}
	return toUserDTO(user), nil
}

// findUser parses id and loads the user, turning a miss into ErrUserNotFound.
func findUser(ctx context.Context, repo repository.UserRepository, id string) (*entity.User, error) {
	userID, err := entity.ParseUserID(id)
	if err != nil {
		return nil, err
	}
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}
