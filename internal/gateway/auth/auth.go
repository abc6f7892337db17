package auth

import (
	"context"
	"errors"
	"fmt"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/session"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash сверяется, когда пользователя нет, чтобы время ответа не выдавало существующие email.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3ZCdrbnWpPTN6Eh1wZpbOqW")

type Gateway struct {
	users UserRepository
}

func New(users UserRepository) *Gateway {
	return &Gateway{
		users: users,
	}
}

func (g *Gateway) SignIn(ctx context.Context, email, password string) (*entities.Principal, error) {
	user, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, session.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("gateway auth, get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, session.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("gateway auth, compare password: %w", err)
	}

	switch user.Role {
	case entities.RoleAdmin, entities.RoleManager, entities.RoleStaff:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, user.Role)
	}

	principal := user.Principal()
	return &principal, nil
}

// HashPassword для заведения пользователей.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
