package connectivity_check

import (
	"context"
	"time"

	"adminpanel/pkg/logger"
)

type Monitor interface {
	Check(ctx context.Context) bool
}

type ConnectivityCheck struct {
	log      logger.Logger
	monitor  Monitor
	interval time.Duration
	online   *bool
}

func NewConnectivityCheck(log logger.Logger, monitor Monitor, interval time.Duration) *ConnectivityCheck {
	return &ConnectivityCheck{
		log:      log,
		monitor:  monitor,
		interval: interval,
	}
}

func (c *ConnectivityCheck) TTL() time.Duration {
	return c.interval
}

// Do офлайн не ошибка задачи, в лог пишется только смена состояния.
func (c *ConnectivityCheck) Do(ctx context.Context) error {
	online := c.monitor.Check(ctx)

	if c.online == nil || *c.online != online {
		c.log.With(
			logger.NewField("online", online),
		).Info("connectivity changed")
	}
	c.online = &online

	return nil
}

func (c *ConnectivityCheck) Info() string {
	return "connectivity check"
}
