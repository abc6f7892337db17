//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"adminpanel/internal/entities"
)

type AttemptsStore interface {
	Get(ctx context.Context, deviceID string) (entities.LoginAttempts, error)
	Save(ctx context.Context, deviceID string, attempts entities.LoginAttempts) error
	Clear(ctx context.Context, deviceID string) error
}

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*entities.Principal, error)
}

type TokenIssuer interface {
	Issue(userID, email, role string, branchIDs []string) (string, time.Time, error)
}
