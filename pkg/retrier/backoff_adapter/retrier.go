package backoff_adapter

import (
	"context"

	"adminpanel/pkg/logger"
	"adminpanel/pkg/retrier"

	"github.com/cenkalti/backoff/v4"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}

// Ping повторяет проверку подключения по ConnectConfig и логирует попытки.
// Используется при старте для postgres, kafka, rabbitmq и grpc.
func Ping(ctx context.Context, log logger.Logger, target string, ping func(context.Context) error) error {
	r := New(retrier.ConnectConfig())

	var attempt uint64
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting " + target + " connection")

		return ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error(target + " connection failed after retries")
		return err
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info(target + " connection established")
	return nil
}
