//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=branch_names_get_test
package branch_names_get

import (
	"context"

	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Names(ctx context.Context, ids []string) (map[string]string, error)
}
