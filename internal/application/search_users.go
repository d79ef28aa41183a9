package application

import (
	"context"
	"strings"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// UserSearcher looks users up in a secondary index.
type UserSearcher interface {
	Search(ctx context.Context, query string, size int) ([]UserDTO, error)
}

type SearchUsersUseCase struct {
	searcher UserSearcher
}

// NewSearchUsersUseCase accepts a nil searcher; search then always comes back empty.
func NewSearchUsersUseCase(searcher UserSearcher) *SearchUsersUseCase {
	return &SearchUsersUseCase{searcher: searcher}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, req SearchUsersRequest) ([]UserDTO, error) {
	q := strings.TrimSpace(req.Query)
	if q == "" || uc.searcher == nil {
		return []UserDTO{}, nil
	}
	size := req.Size
	if size <= 0 || size > maxSearchSize {
		size = defaultSearchSize
	}
	return uc.searcher.Search(ctx, q, size)
}
