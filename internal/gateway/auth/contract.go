//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"adminpanel/internal/entities"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
}
