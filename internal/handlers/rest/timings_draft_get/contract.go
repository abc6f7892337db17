//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timings_draft_get_test
package timings_draft_get

import (
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
	Current(principal entities.Principal) (timing.DraftView, error)
}
