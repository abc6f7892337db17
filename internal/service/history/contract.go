//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"

	"adminpanel/internal/entities"
)

type Repository interface {
	ListHistory(ctx context.Context, query Query) ([]entities.Order, error)
}
