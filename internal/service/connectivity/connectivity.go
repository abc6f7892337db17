package connectivity

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultHost        = "google.com"
	DefaultTimeout     = 5 * time.Second
	DefaultSettleDelay = time.Second

	OfflineBanner = "No internet connection. Check your network and try again."
)

type Config struct {
	Host        string
	Timeout     time.Duration
	SettleDelay time.Duration
}

type Status struct {
	Online    bool
	CheckedAt time.Time
}

// Banner текст плашки, пустой пока сеть есть.
func (s Status) Banner() string {
	if s.Online {
		return ""
	}
	return OfflineBanner
}

type Monitor struct {
	resolver    Resolver
	host        string
	timeout     time.Duration
	settleDelay time.Duration
	now         func() time.Time

	mu     sync.RWMutex
	status Status

	debounceMu sync.Mutex
	debounce   *time.Timer
	stopped    bool
}

func New(resolver Resolver, cfg Config) *Monitor {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}

	OnlineGauge.Set(1)

	return &Monitor{
		resolver:    resolver,
		host:        cfg.Host,
		timeout:     cfg.Timeout,
		settleDelay: cfg.SettleDelay,
		now:         time.Now,
		status:      Status{Online: true},
	}
}

// Check любой сбой резолва, включая таймаут, считается офлайном.
func (m *Monitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	addrs, err := m.resolver.LookupHost(ctx, m.host)
	online := err == nil && len(addrs) > 0

	m.mu.Lock()
	m.status = Status{Online: online, CheckedAt: m.now()}
	m.mu.Unlock()

	if online {
		OnlineGauge.Set(1)
		ChecksTotal.WithLabelValues("online").Inc()
	} else {
		OnlineGauge.Set(0)
		ChecksTotal.WithLabelValues("offline").Inc()
	}

	return online
}

func (m *Monitor) Retry(ctx context.Context) Status {
	m.Check(ctx)
	return m.Status()
}

func (m *Monitor) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Trigger сигнал о смене сети. Пачка сигналов в пределах settleDelay
// схлопывается в одну проверку.
func (m *Monitor) Trigger() {
	m.debounceMu.Lock()
	defer m.debounceMu.Unlock()

	if m.stopped {
		return
	}
	if m.debounce != nil {
		m.debounce.Stop()
	}
	m.debounce = time.AfterFunc(m.settleDelay, func() {
		m.Check(context.Background())
	})
}

// Stop отменяет отложенную проверку, дальнейшие Trigger игнорируются.
func (m *Monitor) Stop() {
	m.debounceMu.Lock()
	defer m.debounceMu.Unlock()

	m.stopped = true
	if m.debounce != nil {
		m.debounce.Stop()
	}
}
