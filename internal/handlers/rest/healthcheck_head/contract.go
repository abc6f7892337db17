package healthcheck_head

import "context"

// Checker зависимость, без которой сервис не готов принимать трафик.
type Checker interface {
	Ping(ctx context.Context) error
}
