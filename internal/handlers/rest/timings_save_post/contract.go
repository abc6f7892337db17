//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timings_save_post_test
package timings_save_post

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
	Save(ctx context.Context, principal entities.Principal) (timing.DraftView, error)
}
