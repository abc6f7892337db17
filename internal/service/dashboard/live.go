package dashboard

import (
	"context"
	"sync"
	"time"

	"adminpanel/internal/entities"
)

// Update очередное состояние одного показателя в живом потоке.
type Update struct {
	Aggregate Aggregate
	State     State
	Value     any
	Err       error
	At        time.Time
}

// Subscribe запускает по горутине на каждый показатель. Каждая пересчитывает
// свой показатель по таймеру и по событию смены статуса заказа.
// Канал закрывается после отмены ctx; результаты после отмены отбрасываются.
func (s *Dashboard) Subscribe(ctx context.Context, principal entities.Principal, filter entities.BranchFilter) <-chan Update {
	scope := principal.Scope(filter)
	updates := make(chan Update, 2*len(Aggregates))

	var wg sync.WaitGroup
	for _, aggregate := range Aggregates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.watch(ctx, aggregate, scope, updates)
		}()
	}

	go func() {
		wg.Wait()
		close(updates)
	}()

	return updates
}

func (s *Dashboard) watch(ctx context.Context, aggregate Aggregate, scope entities.BranchScope, updates chan<- Update) {
	changed, unsubscribe := s.notifier.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		if !s.emit(ctx, updates, Update{Aggregate: aggregate, State: StateLoading, At: s.now()}) {
			return
		}

		value, err := s.compute(ctx, aggregate, scope)
		if ctx.Err() != nil {
			return
		}

		update := Update{Aggregate: aggregate, State: StateReady, Value: value, At: s.now()}
		if err != nil {
			update = Update{Aggregate: aggregate, State: StateError, Err: err, At: s.now()}
		}
		if !s.emit(ctx, updates, update) {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-changed:
		}
	}
}

func (s *Dashboard) emit(ctx context.Context, updates chan<- Update, update Update) bool {
	select {
	case <-ctx.Done():
		return false
	case updates <- update:
		return true
	}
}
