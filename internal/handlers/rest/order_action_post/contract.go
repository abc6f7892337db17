//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_action_post_test
package order_action_post

import (
	"context"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/orderaction"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Execute(ctx context.Context, principal entities.Principal, orderID string, req orderaction.Request) error
}
