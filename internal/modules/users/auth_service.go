package users

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type emailLookup interface {
	GetByEmail(ctx context.Context, email string) (User, error)
}

type AuthService struct {
	users emailLookup
}

func NewAuthService(users emailLookup) *AuthService { return &AuthService{users: users} }

// Authenticate returns ErrInvalidCredentials for both unknown emails and bad
// passwords.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
