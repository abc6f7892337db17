package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/dashboard"
	"adminpanel/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	dashboard                Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dashboardService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dashboard:                dashboardService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true = прервать ConsumeClaim, сообщение не отмечено и придет снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	err = h.dashboard.OrderStatusChanged(ctx, event.OrderID, entities.OrderStatusType(event.Status))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dashboard.ErrUnknownStatus), errors.Is(err, dashboard.ErrMissingOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler skipped invalid event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.changed: processed")
	sess.MarkMessage(message, "")
	return false
}
