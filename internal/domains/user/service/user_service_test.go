package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// memoryRepository is an in-memory user.Repository for service tests.
type memoryRepository struct {
	users map[uuid.UUID]*user.User
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: make(map[uuid.UUID]*user.User)}
}

func (r *memoryRepository) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

func newTestService(repo user.Repository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret"))
}

func TestRegister_Success(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	dto, err := svc.Register(context.Background(), user.SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.Equal(t, "Alice", dto.Name)
	assert.Equal(t, "a@x.com", dto.Email)

	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_DistinctEmails_DistinctIDs(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	a, err := svc.Register(context.Background(), user.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	b, err := svc.Register(context.Background(), user.SignupRequest{Name: "Bob", Email: "b@x.com", Password: "secret2"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), user.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), user.SignupRequest{Name: "Imposter", Email: "a@x.com", Password: "other66"})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	// The repeat signup must not have created a record.
	assert.Len(t, repo.users, 1)
}

func TestRegister_ValidationFailure(t *testing.T) {
	svc := newTestService(newMemoryRepository())

	_, err := svc.Register(context.Background(), user.SignupRequest{Name: "A", Email: "bad", Password: "x"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), user.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), user.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Alice", resp.User.Name)

	// The token's sole claim is the user id.
	userID, err := jwt.NewManager("test-secret").Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemoryRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), user.SignupRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{Email: "a@x.com", Password: "wrong-1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newMemoryRepository())

	_, err := svc.Login(context.Background(), user.LoginRequest{Email: "ghost@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

// wrappingRepository decorates the not-found error the way a storage
// layer annotating its errors would.
type wrappingRepository struct {
	*memoryRepository
}

func (r *wrappingRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := r.memoryRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", email, err)
	}
	return u, nil
}

func TestLogin_UnknownEmail_WrappedNotFound(t *testing.T) {
	svc := newTestService(&wrappingRepository{newMemoryRepository()})

	_, err := svc.Login(context.Background(), user.LoginRequest{Email: "ghost@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_MalformedRequest_ReportsInvalidCredentials(t *testing.T) {
	// The login wire contract has no 400; bad input is just a failed
	// authentication.
	svc := newTestService(newMemoryRepository())

	_, err := svc.Login(context.Background(), user.LoginRequest{Email: "not-an-email", Password: ""})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
