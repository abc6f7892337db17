//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connectivity_retry_post_test
package connectivity_retry_post

import (
	"context"

	"adminpanel/internal/service/connectivity"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Retry(ctx context.Context) connectivity.Status
}
