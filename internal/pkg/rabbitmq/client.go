package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"adminpanel/internal/pkg/config"
	"adminpanel/pkg/logger"
	"adminpanel/pkg/retrier/backoff_adapter"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client одно соединение и один канал с publisher confirms.
type Client struct {
	conn *amqp.Connection
	ch   *amqp.Channel

	acks <-chan amqp.Confirmation
	mu   sync.Mutex // Publish сериализуется, подтверждения приходят по порядку
}

func Dial(ctx context.Context, log logger.Logger, cfg *config.RabbitMQ) (*Client, error) {
	var conn *amqp.Connection

	mqLog := log.With(
		logger.NewField("component", "rabbitmq"),
		logger.NewField("queue", cfg.PrintQueue),
	)

	err := backoff_adapter.Ping(ctx, mqLog, "RabbitMQ", func(context.Context) error {
		var err error
		conn, err = amqp.Dial(cfg.URL)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.PrintQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", cfg.PrintQueue, err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	return &Client{conn: conn, ch: ch, acks: acks}, nil
}

// Publish в default exchange с routing key = имя очереди, ждет ack брокера.
func (c *Client) Publish(ctx context.Context, queue string, msg amqp.Publishing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return err
	}

	select {
	case conf := <-c.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish NACK from broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) Ping(context.Context) error {
	if c.conn == nil || c.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (c *Client) Close() error {
	var errs []error
	if c.ch != nil {
		errs = append(errs, c.ch.Close())
	}
	if c.conn != nil {
		errs = append(errs, c.conn.Close())
	}
	return errors.Join(errs...)
}
