package menu

import (
	"context"
	"fmt"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CountAvailable без фильтра по филиалу, так считает и панель.
func (r *Repository) CountAvailable(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM menu_items WHERE is_available = TRUE`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected menu repository countavailable error: %w", err)
	}
	return count, nil
}
