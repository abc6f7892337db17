package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adminpanel/internal/entities"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const DefaultRecentOrdersLimit = 10

type Aggregate string

const (
	AggregateOrdersToday      Aggregate = "orders_today"
	AggregateAvailableDrivers Aggregate = "available_drivers"
	AggregateRevenue          Aggregate = "revenue"
	AggregateAvailableMenu    Aggregate = "available_menu_items"
	AggregateRecentOrders     Aggregate = "recent_orders"
)

var Aggregates = []Aggregate{
	AggregateOrdersToday,
	AggregateAvailableDrivers,
	AggregateRevenue,
	AggregateAvailableMenu,
	AggregateRecentOrders,
}

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Stat состояние одного показателя, ошибка одного не влияет на остальные.
type Stat[T any] struct {
	State State
	Value T
	Err   error
}

type Snapshot struct {
	BusinessDayStart time.Time
	OrdersToday      Stat[int64]
	AvailableDrivers Stat[int64]
	Revenue          Stat[decimal.Decimal]
	AvailableMenu    Stat[int64]
	RecentOrders     Stat[[]entities.Order]
}

type Config struct {
	RefreshInterval   time.Duration
	RecentOrdersLimit int
	// Location зона бизнес-дня, по умолчанию time.Local.
	Location *time.Location
}

type Dashboard struct {
	orders   OrderRepository
	drivers  DriverRepository
	menu     MenuRepository
	notifier *Notifier

	refreshInterval time.Duration
	recentLimit     int
	location        *time.Location
	now             func() time.Time
}

func New(orders OrderRepository, drivers DriverRepository, menu MenuRepository, notifier *Notifier, cfg Config) *Dashboard {
	if cfg.RecentOrdersLimit <= 0 {
		cfg.RecentOrdersLimit = DefaultRecentOrdersLimit
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 30 * time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &Dashboard{
		orders:          orders,
		drivers:         drivers,
		menu:            menu,
		notifier:        notifier,
		refreshInterval: cfg.RefreshInterval,
		recentLimit:     cfg.RecentOrdersLimit,
		location:        cfg.Location,
		now:             time.Now,
	}
}

// Snapshot считает все показатели параллельно и независимо.
func (s *Dashboard) Snapshot(ctx context.Context, principal entities.Principal, filter entities.BranchFilter) Snapshot {
	scope := principal.Scope(filter)
	since := s.businessDayStart()

	snapshot := Snapshot{BusinessDayStart: since}

	var group errgroup.Group
	group.Go(func() error {
		snapshot.OrdersToday = statOf(s.countOrders(ctx, scope, since))
		return nil
	})
	group.Go(func() error {
		snapshot.AvailableDrivers = statOf(s.countDrivers(ctx, scope))
		return nil
	})
	group.Go(func() error {
		snapshot.Revenue = statOf(s.revenue(ctx, scope, since))
		return nil
	})
	group.Go(func() error {
		snapshot.AvailableMenu = statOf(s.countMenu(ctx))
		return nil
	})
	group.Go(func() error {
		snapshot.RecentOrders = statOf(s.recentOrders(ctx, scope))
		return nil
	})
	_ = group.Wait()

	return snapshot
}

// OrderStatusChanged сигнал из шины событий: живые подписки перечитают данные.
func (s *Dashboard) OrderStatusChanged(_ context.Context, orderID string, status entities.OrderStatusType) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrMissingOrderID
	}
	if !isKnownStatus(status) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	s.notifier.Notify()
	return nil
}

func (s *Dashboard) businessDayStart() time.Time {
	return BusinessDayStart(s.now().In(s.location))
}

func (s *Dashboard) compute(ctx context.Context, aggregate Aggregate, scope entities.BranchScope) (any, error) {
	since := s.businessDayStart()

	switch aggregate {
	case AggregateOrdersToday:
		return s.countOrders(ctx, scope, since)
	case AggregateAvailableDrivers:
		return s.countDrivers(ctx, scope)
	case AggregateRevenue:
		return s.revenue(ctx, scope, since)
	case AggregateAvailableMenu:
		return s.countMenu(ctx)
	case AggregateRecentOrders:
		return s.recentOrders(ctx, scope)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAggregate, aggregate)
	}
}

func (s *Dashboard) countOrders(ctx context.Context, scope entities.BranchScope, since time.Time) (int64, error) {
	if scope.IsEmpty() {
		return 0, nil
	}
	count, err := s.orders.CountSince(ctx, scope, since)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (s *Dashboard) countDrivers(ctx context.Context, scope entities.BranchScope) (int64, error) {
	if scope.IsEmpty() {
		return 0, nil
	}
	count, err := s.drivers.CountAvailable(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("count available drivers: %w", err)
	}
	return count, nil
}

// revenue только оплачиваемые статусы; refunded исключается всегда.
func (s *Dashboard) revenue(ctx context.Context, scope entities.BranchScope, since time.Time) (decimal.Decimal, error) {
	if scope.IsEmpty() {
		return decimal.Zero, nil
	}
	totals, err := s.orders.TotalsByStatusSince(ctx, scope, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}

	sum := decimal.Zero
	for status, total := range totals {
		if status.IsBillable() {
			sum = sum.Add(total)
		}
	}
	return sum, nil
}

func (s *Dashboard) countMenu(ctx context.Context) (int64, error) {
	count, err := s.menu.CountAvailable(ctx)
	if err != nil {
		return 0, fmt.Errorf("count available menu items: %w", err)
	}
	return count, nil
}

func (s *Dashboard) recentOrders(ctx context.Context, scope entities.BranchScope) ([]entities.Order, error) {
	if scope.IsEmpty() {
		return []entities.Order{}, nil
	}
	orders, err := s.orders.ListRecent(ctx, scope, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return orders, nil
}

func statOf[T any](value T, err error) Stat[T] {
	if err != nil {
		return Stat[T]{State: StateError, Err: err}
	}
	return Stat[T]{State: StateReady, Value: value}
}

func isKnownStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderPreparing, entities.OrderNeedsRiderAssignment,
		entities.OrderRiderAssigned, entities.OrderPickedUp, entities.OrderDelivered,
		entities.OrderCompleted, entities.OrderPaid, entities.OrderCancelled, entities.OrderRefunded:
		return true
	default:
		return false
	}
}
