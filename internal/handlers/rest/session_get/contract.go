//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_get_test
package session_get

import (
	"context"

	"adminpanel/internal/service/session"
	"adminpanel/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	State(ctx context.Context, deviceID string) (session.State, error)
}
