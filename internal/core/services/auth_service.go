package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"unicode"

	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo ports.UserRepository
	tokens   ports.TokenService
}

func NewAuthService(userRepo ports.UserRepository, tokens ports.TokenService) ports.AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	first, last, err := domain.SplitFullName(input.Name)
	if err != nil {
		return nil, err
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	if !passwordIsSecure(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    first,
		LastName:     last,
		Email:        input.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login collapses unknown email and wrong password into the same error, so the
// response never reveals which one was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	accessToken, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func passwordIsSecure(password string) bool {
	if len(password) < 8 {
		return false
	}
	for _, r := range password {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
