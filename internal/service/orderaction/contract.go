//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderaction_test
package orderaction

import (
	"context"

	"adminpanel/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type DriverRepository interface {
	ListAvailable(ctx context.Context, branchIDs []string) ([]entities.Driver, error)
}

// OrderMutator внешний сервис заказов: переходы статусов и назначение курьера.
type OrderMutator interface {
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType, reason *string, actor string) error
	ManualAssign(ctx context.Context, orderID string, riderID string) error
}

type Printer interface {
	PrintReceipt(ctx context.Context, orderID string) error
}
