package branchnames

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Cache имена филиалов живут до рестарта процесса или до Invalidate.
// Неизвестные ID тоже запоминаются, чтобы не ходить за ними повторно.
type Cache struct {
	repo Repository

	mu    sync.RWMutex
	names map[string]string
	known map[string]struct{}
}

func New(repo Repository) *Cache {
	return &Cache{
		repo:  repo,
		names: make(map[string]string),
		known: make(map[string]struct{}),
	}
}

func (c *Cache) Names(ctx context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string, len(ids))
	missing := c.lookup(ids, result)
	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := c.repo.LoadNames(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("load branch names: %w", err)
	}

	c.mu.Lock()
	for _, id := range missing {
		c.known[id] = struct{}{}
		if name, ok := loaded[id]; ok {
			c.names[id] = name
			result[id] = name
		}
	}
	c.mu.Unlock()

	return result, nil
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.names = make(map[string]string)
	c.known = make(map[string]struct{})
}

func (c *Cache) lookup(ids []string, result map[string]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var missing []string
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := c.known[id]; !ok {
			if !slices.Contains(missing, id) {
				missing = append(missing, id)
			}
			continue
		}
		if name, ok := c.names[id]; ok {
			result[id] = name
		}
	}
	return missing
}
