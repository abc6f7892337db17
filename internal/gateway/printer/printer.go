package printer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// PrintJob сообщение для сервиса печати чеков.
type PrintJob struct {
	JobID       string    `json:"job_id"`
	OrderID     string    `json:"order_id"`
	RequestedAt time.Time `json:"requested_at"`
}

type Printer struct {
	publisher publisher
	queue     string
	now       func() time.Time
}

func New(publisher publisher, queue string) *Printer {
	return &Printer{
		publisher: publisher,
		queue:     queue,
		now:       time.Now,
	}
}

// PrintReceipt ставит задание в очередь печати, сам чек печатает внешний сервис.
func (p *Printer) PrintReceipt(ctx context.Context, orderID string) error {
	job := PrintJob{
		JobID:       uuid.NewString(),
		OrderID:     orderID,
		RequestedAt: p.now().UTC(),
	}

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("gateway printer, marshal job: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.publisher.Publish(ctx, p.queue, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    job.JobID,
		Timestamp:    job.RequestedAt,
		Type:         "receipt.print",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("gateway printer, publish %s: %w", orderID, err)
	}
	return nil
}
