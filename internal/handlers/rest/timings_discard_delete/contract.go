//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timings_discard_delete_test
package timings_discard_delete

import (
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
	Discard(principal entities.Principal, confirm bool) error
}
