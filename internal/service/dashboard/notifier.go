package dashboard

import "sync"

// Notifier рассылает сигнал "данные заказов изменились" всем живым подпискам.
// Сигналы не копятся: подписчику хватает одного, чтобы перечитать данные.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[int]chan struct{}),
	}
}

func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *Notifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
