//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=printer_test
package printer

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	Publish(ctx context.Context, queue string, msg amqp.Publishing) error
}
