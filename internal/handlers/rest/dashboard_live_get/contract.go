//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_live_get_test
package dashboard_live_get

import (
	"context"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/dashboard"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Subscribe(ctx context.Context, principal entities.Principal, filter entities.BranchFilter) <-chan dashboard.Update
}
