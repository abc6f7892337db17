//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_riders_get_test
package order_riders_get

import (
	"context"

	"adminpanel/internal/entities"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListRiders(ctx context.Context, principal entities.Principal, orderID string) ([]entities.Driver, error)
}
