//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test
package rate_limiter

import "adminpanel/pkg/logger"

type Limiter interface {
	Allow() bool
}

// KeyedLimiter отдельный лимит на каждый ключ (устройство, адрес).
type KeyedLimiter interface {
	AllowKey(key string) bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
