package application

import (
	"time"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
)

type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserRequest struct {
	ID    string
	Name  string
	Email string
}

type ListUsersRequest struct {
	Page    int
	PerPage int
}

type SearchUsersRequest struct {
	Query string
	Size  int
}

// UserDTO is the outward projection of a user. The password hash is never part of it.
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserListDTO struct {
	Users      []UserDTO `json:"users"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
}

func toUserDTO(u *entity.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Value(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// totalPages is ceil(total/perPage); zero users means zero pages.
func totalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
