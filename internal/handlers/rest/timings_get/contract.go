//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timings_get_test
package timings_get

import (
	"context"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/timing"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Load(ctx context.Context, principal entities.Principal, branchID string, confirm bool) (timing.DraftView, error)
}
