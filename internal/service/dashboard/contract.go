//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_test
package dashboard

import (
	"context"
	"time"

	"adminpanel/internal/entities"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CountSince(ctx context.Context, scope entities.BranchScope, since time.Time) (int64, error)
	// TotalsByStatusSince сумма total_amount по каждому статусу.
	TotalsByStatusSince(ctx context.Context, scope entities.BranchScope, since time.Time) (map[entities.OrderStatusType]decimal.Decimal, error)
	ListRecent(ctx context.Context, scope entities.BranchScope, limit int) ([]entities.Order, error)
}

type DriverRepository interface {
	CountAvailable(ctx context.Context, scope entities.BranchScope) (int64, error)
}

type MenuRepository interface {
	CountAvailable(ctx context.Context) (int64, error)
}
