package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*domain.User{}}
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := r.users[email]; ok {
		return user, nil
	}
	return nil, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.Email] = user
	return nil
}

func newTestAuthService(repo ports.UserRepository) ports.AuthService {
	return NewAuthService(repo, NewTokenService([]byte("test-secret")))
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Jane Mary Doe",
		Email:    "jane@example.com",
		Password: "abcdef12",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Jane Mary", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "abcdef12", user.PasswordHash, "raw password must never be stored")
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	tests := []struct {
		name  string
		input ports.RegisterInput
		want  error
	}{
		{"single-word name", ports.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "abcdef12"}, domain.ErrNameNotFull},
		{"bad email", ports.RegisterInput{Name: "Jane Doe", Email: "not-an-email", Password: "abcdef12"}, domain.ErrInvalidEmail},
		{"short password", ports.RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "abc1"}, domain.ErrWeakPassword},
		{"non-alphanumeric password", ports.RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "abcdef1!"}, domain.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	input := ports.RegisterInput{Name: "Jane Doe", Email: "jane@example.com", Password: "abcdef12"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	input.Name = "Other Person"
	input.Password = "zyxwvu98"
	_, err = svc.Register(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "abcdef12",
	})
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), "jane@example.com", "abcdef12")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "abcdef12",
	})
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "abcdef12")
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)

	_, errWrong := svc.Login(context.Background(), "jane@example.com", "wrongpass1")
	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)

	assert.Equal(t, errUnknown, errWrong)
}
