package application

import (
	"context"

	"github.com/samber/lo"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
)

type ListUsersUseCase struct {
	repo repository.UserRepository
}

func NewListUsersUseCase(repo repository.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{repo: repo}
}

// Execute returns one page of users. Non-positive page or page size fall back
// to the defaults; a page past the end is empty rather than an error.
func (uc *ListUsersUseCase) Execute(ctx context.Context, req ListUsersRequest) (UserListDTO, error) {
	page, perPage := req.Page, req.PerPage
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	users, err := uc.repo.FindAll(ctx, page, perPage)
	if err != nil {
		return UserListDTO{}, err
	}
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return UserListDTO{}, err
	}

	return UserListDTO{
		Users:      lo.Map(users, func(u *entity.User, _ int) UserDTO { return toUserDTO(u) }),
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}
