package application

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/service"
)

// UserUseCases bundles every user operation for the interface layer.
type UserUseCases struct {
	Create *CreateUserUseCase
	Get    *GetUserUseCase
	Update *UpdateUserUseCase
	Delete *DeleteUserUseCase
	List   *ListUsersUseCase
	Search *SearchUsersUseCase
}

// NewUserUseCases wires the use cases around one repository. pub and
// searcher are optional.
func NewUserUseCases(repo repository.UserRepository, pub EventPublisher, searcher UserSearcher, logger *logrus.Logger) *UserUseCases {
	domain := service.NewUserDomainService(repo)
	return &UserUseCases{
		Create: NewCreateUserUseCase(repo, domain, pub, logger),
		Get:    NewGetUserUseCase(repo),
		Update: NewUpdateUserUseCase(repo, domain, pub, logger),
		Delete: NewDeleteUserUseCase(repo, pub, logger),
		List:   NewListUsersUseCase(repo),
		Search: NewSearchUsersUseCase(searcher),
	}
}
