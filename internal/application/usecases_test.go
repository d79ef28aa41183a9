package application_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-user-management/internal/application"
	"github.com/oksasatya/go-ddd-user-management/internal/domain/entity"
	"github.com/oksasatya/go-ddd-user-management/internal/infrastructure/memory"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

type recordingPublisher struct {
	mu     sync.Mutex
	events []application.UserEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt application.UserEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []application.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]application.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	repo *memory.UserRepository
	pub  *recordingPublisher
	uc   *application.UserUseCases
	hook *logtest.Hook
}

func newFixture() *fixture {
	logger, hook := logtest.NewNullLogger()
	repo := memory.NewUserRepository()
	pub := &recordingPublisher{}
	return &fixture{
		repo: repo,
		pub:  pub,
		uc:   application.NewUserUseCases(repo, pub, nil, logger),
		hook: hook,
	}
}

func (f *fixture) create(t *testing.T, name, email string) application.UserDTO {
	t.Helper()
	out, err := f.uc.Create.Execute(context.Background(), application.CreateUserRequest{Name: name, Email: email, Password: "password123"})
	require.NoError(t, err)
	return out
}

func TestCreateUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	out, err := f.uc.Create.Execute(ctx, application.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Regexp(t, uuidPattern, out.ID)
	assert.Equal(t, "John Doe", out.Name)
	assert.Equal(t, "john@example.com", out.Email)
	assert.Equal(t, out.CreatedAt, out.UpdatedAt)

	id, err := entity.ParseUserID(out.ID)
	require.NoError(t, err)
	stored, err := f.repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.VerifyPassword("password123"))
	assert.NotEqual(t, "password123", stored.PasswordHash())

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, application.UserCreated, f.pub.events[0].Type)
	assert.Equal(t, out, f.pub.events[0].User)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture()
	f.create(t, "John Doe", "john@example.com")

	_, err := f.uc.Create.Execute(context.Background(), application.CreateUserRequest{
		Name:     "Another John",
		Email:    "John@Example.com",
		Password: "password123",
	})
	require.ErrorIs(t, err, entity.ErrEmailTaken)
	assert.ErrorIs(t, err, entity.ErrConflict)
	assert.Contains(t, err.Error(), "email already in use")

	n, _ := f.repo.Count(context.Background())
	assert.Equal(t, 1, n)
	assert.Equal(t, []application.EventType{application.UserCreated}, f.pub.types())
}

func TestCreateUser_Validation(t *testing.T) {
	f := newFixture()
	cases := []struct {
		name string
		req  application.CreateUserRequest
		want error
	}{
		{"empty name", application.CreateUserRequest{Name: "", Email: "a@example.com", Password: "password123"}, entity.ErrNameEmpty},
		{"short name", application.CreateUserRequest{Name: "Jo", Email: "a@example.com", Password: "password123"}, entity.ErrNameTooShort},
		{"bad email", application.CreateUserRequest{Name: "John Doe", Email: "invalid", Password: "password123"}, entity.ErrInvalidEmail},
		{"no password", application.CreateUserRequest{Name: "John Doe", Email: "a@example.com"}, entity.ErrPasswordEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Create.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, entity.ErrValidation)
		})
	}
	assert.Empty(t, f.pub.types())
}

func TestGetUser(t *testing.T) {
	f := newFixture()
	created := f.create(t, "John Doe", "john@example.com")

	got, err := f.uc.Get.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGetUser_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Get.Execute(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrInvalidUserID)

	_, err = f.uc.Get.Execute(context.Background(), entity.NewUserID().Value())
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture()
	created := f.create(t, "John Doe", "john@example.com")
	time.Sleep(2 * time.Millisecond)

	out, err := f.uc.Update.Execute(context.Background(), application.UpdateUserRequest{
		ID:    created.ID,
		Name:  "John Updated",
		Email: "JOHN.UPDATED@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "John Updated", out.Name)
	assert.Equal(t, "john.updated@example.com", out.Email)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt))

	got, err := f.uc.Get.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, out, got)
	assert.Equal(t, []application.EventType{application.UserCreated, application.UserUpdated}, f.pub.types())
}

func TestUpdateUser_KeepOwnEmail(t *testing.T) {
	f := newFixture()
	created := f.create(t, "John Doe", "john@example.com")

	out, err := f.uc.Update.Execute(context.Background(), application.UpdateUserRequest{
		ID: created.ID, Name: "John Renamed", Email: "john@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Renamed", out.Name)
}

func TestUpdateUser_EmailTakenByOther(t *testing.T) {
	f := newFixture()
	john := f.create(t, "John Doe", "john@example.com")
	f.create(t, "Jane Roe", "jane@example.com")

	_, err := f.uc.Update.Execute(context.Background(), application.UpdateUserRequest{
		ID: john.ID, Name: "John Doe", Email: "jane@example.com",
	})
	require.ErrorIs(t, err, entity.ErrEmailTakenByOther)
	assert.ErrorIs(t, err, entity.ErrConflict)

	got, err := f.uc.Get.Execute(context.Background(), john.ID)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestUpdateUser_NameTooShort(t *testing.T) {
	f := newFixture()
	created := f.create(t, "John Doe", "john@example.com")

	_, err := f.uc.Update.Execute(context.Background(), application.UpdateUserRequest{
		ID: created.ID, Name: "J", Email: "john@example.com",
	})
	require.ErrorIs(t, err, entity.ErrNameTooShort)
	assert.ErrorIs(t, err, entity.ErrValidation)

	got, err := f.uc.Get.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateUser_Errors(t *testing.T) {
	f := newFixture()
	created := f.create(t, "John Doe", "john@example.com")

	_, err := f.uc.Update.Execute(context.Background(), application.UpdateUserRequest{
		ID: entity.NewUserID().Value(), Name: "John Doe", Email: "john@example.com",
	})
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	_, err = f.uc.Update.Execute(context.Background(), application.UpdateUserRequest{
		ID: created.ID, Name: "John Doe", Email: "broken",
	})
	assert.ErrorIs(t, err, entity.ErrInvalidEmail)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture()
	created := f.create(t, "John Doe", "john@example.com")

	require.NoError(t, f.uc.Delete.Execute(context.Background(), created.ID))

	_, err := f.uc.Get.Execute(context.Background(), created.ID)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	assert.Equal(t, []application.EventType{application.UserCreated, application.UserDeleted}, f.pub.types())

	// the email is free again
	f.create(t, "John Again", "john@example.com")
}

func TestDeleteUser_NotFound(t *testing.T) {
	f := newFixture()

	err := f.uc.Delete.Execute(context.Background(), entity.NewUserID().Value())
	require.ErrorIs(t, err, entity.ErrUserNotFound)

	err = f.uc.Delete.Execute(context.Background(), "123")
	assert.ErrorIs(t, err, entity.ErrInvalidUserID)
	assert.Empty(t, f.pub.types())
}

func TestListUsers_Pagination(t *testing.T) {
	f := newFixture()
	for i := 0; i < 25; i++ {
		f.create(t, fmt.Sprintf("User %02d", i), fmt.Sprintf("user%02d@example.com", i))
	}
	ctx := context.Background()

	p1, err := f.uc.List.Execute(ctx, application.ListUsersRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, p1.Users, 10)
	assert.Equal(t, 25, p1.Total)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 1, p1.Page)
	assert.Equal(t, 10, p1.PerPage)

	p3, err := f.uc.List.Execute(ctx, application.ListUsersRequest{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, p3.Users, 5)

	p9, err := f.uc.List.Execute(ctx, application.ListUsersRequest{Page: 9, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, p9.Users)
	assert.NotNil(t, p9.Users)
	assert.Equal(t, 25, p9.Total)
	assert.Equal(t, 3, p9.TotalPages)

	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		res, err := f.uc.List.Execute(ctx, application.ListUsersRequest{Page: page, PerPage: 10})
		require.NoError(t, err)
		for _, u := range res.Users {
			assert.False(t, seen[u.ID], "user %s listed twice", u.ID)
			seen[u.ID] = true
		}
	}
	assert.Len(t, seen, 25)
}

func TestListUsers_Defaults(t *testing.T) {
	f := newFixture()

	empty, err := f.uc.List.Execute(context.Background(), application.ListUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, application.DefaultPage, empty.Page)
	assert.Equal(t, application.DefaultPerPage, empty.PerPage)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Empty(t, empty.Users)

	f.create(t, "John Doe", "john@example.com")
	res, err := f.uc.List.Execute(context.Background(), application.ListUsersRequest{Page: -3, PerPage: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 15, res.PerPage)
	assert.Equal(t, 1, res.TotalPages)
	assert.Len(t, res.Users, 1)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture()
	f.pub.err = errors.New("broker down")

	out, err := f.uc.Create.Execute(context.Background(), application.CreateUserRequest{
		Name: "John Doe", Email: "john@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, err = f.uc.Get.Execute(context.Background(), out.ID)
	require.NoError(t, err)

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "user.created", entry.Data["event"])
	assert.Equal(t, out.ID, entry.Data["user_id"])
}

func TestPublishers_JoinsErrors(t *testing.T) {
	ok := &recordingPublisher{}
	bad := &recordingPublisher{err: errors.New("index unavailable")}
	pubs := application.Publishers{ok, nil, bad}

	err := pubs.Publish(context.Background(), application.UserEvent{Type: application.UserCreated})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index unavailable")
	assert.Len(t, ok.events, 1)
	assert.Len(t, bad.events, 1)
}

type stubSearcher struct {
	gotQuery string
	gotSize  int
	result   []application.UserDTO
}

func (s *stubSearcher) Search(_ context.Context, q string, size int) ([]application.UserDTO, error) {
	s.gotQuery, s.gotSize = q, size
	return s.result, nil
}

func TestSearchUsers(t *testing.T) {
	s := &stubSearcher{result: []application.UserDTO{{ID: "x", Name: "John Doe"}}}
	uc := application.NewSearchUsersUseCase(s)

	res, err := uc.Execute(context.Background(), application.SearchUsersRequest{Query: "  john ", Size: 500})
	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "john", s.gotQuery)
	assert.Equal(t, 10, s.gotSize)

	res, err = uc.Execute(context.Background(), application.SearchUsersRequest{Query: "   "})
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = application.NewSearchUsersUseCase(nil).Execute(context.Background(), application.SearchUsersRequest{Query: "john"})
	require.NoError(t, err)
	assert.Empty(t, res)
}
