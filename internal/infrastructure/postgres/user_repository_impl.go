package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/repository"
)

const (
	uniqueViolation      = "23505"
	usersEmailConstraint = "users_email_key"
)

const selectUserColumns = `SELECT id::text, name, email, password_hash, created_at, updated_at FROM users`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save upserts by id. The UNIQUE constraint on email is the last line of
// defence against two concurrent creates passing the uniqueness check.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    updated_at = EXCLUDED.updated_at
	`, u.ID().Value(), u.Name(), u.Email().Value(), u.PasswordHash(), u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == usersEmailConstraint {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, selectUserColumns+` WHERE id = $1`, id.Value())
	return scanOptional(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, selectUserColumns+` WHERE email = $1`, email.Value())
	return scanOptional(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email.Value()).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

func (r *UserRepository) Delete(ctx context.Context, id entity.UserID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.Value()); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context, page, perPage int) ([]*entity.User, error) {
	if page < 1 || perPage < 1 || page-1 > math.MaxInt/perPage {
		return []*entity.User{}, nil
	}
	rows, err := r.pool.Query(ctx, selectUserColumns+`
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0, perPage)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanOptional(row pgx.Row) (*entity.User, error) {
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, name, email, hash string
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &name, &email, &hash, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	userID, err := entity.ParseUserID(id)
	if err != nil {
		return nil, fmt.Errorf("stored user id %q: %w", id, err)
	}
	addr, err := entity.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("stored email for %s: %w", id, err)
	}
	return entity.RehydrateUser(userID, name, addr, hash, createdAt, updatedAt)
}

var _ repository.UserRepository = (*UserRepository)(nil)
