//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=connectivity_get_test
package connectivity_get

import (
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
	Status() connectivity.Status
}
