//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_history_get_test
package orders_history_get

import (
	"context"
	"time"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/history"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Query(ctx context.Context, principal entities.Principal, req history.Request) (history.Page, error)
	Location() *time.Location
}
