package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
)

type record struct {
	seq  int64
	user entity.User
}

// UserRepository keeps users in process memory. It backs STORAGE_DRIVER=memory
// for local runs and doubles as the repository in unit tests. The email
// uniqueness constraint is enforced under the lock, like a UNIQUE column.
type UserRepository struct {
	mu    sync.RWMutex
	seq   int64
	items map[string]*record
}

func NewUserRepository() *UserRepository {
	return &UserRepository{items: make(map[string]*record)}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, rec := range r.items {
		if id != u.ID().Value() && rec.user.Email().Equals(u.Email()) {
			return entity.ErrEmailTaken
		}
	}
	if rec, ok := r.items[u.ID().Value()]; ok {
		rec.user = *u
		return nil
	}
	r.seq++
	r.items[u.ID().Value()] = &record{seq: r.seq, user: *u}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id.Value()]
	if !ok {
		return nil, nil
	}
	u := rec.user
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.items {
		if rec.user.Email().Equals(email) {
			u := rec.user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (r *UserRepository) Delete(ctx context.Context, id entity.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id.Value())
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context, page, perPage int) ([]*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// the second check keeps (page-1)*perPage from overflowing
	if page < 1 || perPage < 1 || page-1 > math.MaxInt/perPage {
		return []*entity.User{}, nil
	}
	r.mu.RLock()
	recs := make([]record, 0, len(r.items))
	for _, rec := range r.items {
		recs = append(recs, *rec)
	}
	r.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		ci, cj := recs[i].user.CreatedAt(), recs[j].user.CreatedAt()
		if ci.Equal(cj) {
			return recs[i].seq > recs[j].seq
		}
		return ci.After(cj)
	})

	start := (page - 1) * perPage
	if start >= len(recs) {
		return []*entity.User{}, nil
	}
	end := start + perPage
	if end > len(recs) {
		end = len(recs)
	}
	out := make([]*entity.User, 0, end-start)
	for _, rec := range recs[start:end] {
		u := rec.user
		out = append(out, &u)
	}
	return out, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
