package branch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"adminpanel/internal/entities"
	"adminpanel/internal/service/timing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetWorkingHours(ctx context.Context, branchID string) (entities.WorkingHours, error) {
	query := `SELECT working_hours FROM branches WHERE id = $1`

	var raw []byte
	err := r.querier.QueryRow(ctx, query, branchID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timing.ErrBranchNotFound
		}
		return nil, fmt.Errorf("unexpected branch repository getworkinghours error: %w", err)
	}

	if raw == nil {
		return nil, nil
	}

	var hours entities.WorkingHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, fmt.Errorf("unexpected branch repository getworkinghours error: %w", err)
	}

	// NULL, 'null' и '{}' одинаково значат: расписание еще не заполнялось
	if len(hours) == 0 {
		return nil, nil
	}
	return hours, nil
}

// SaveWorkingHours merge по дням недели: ключи из hours перезаписываются,
// остальные поля документа не трогаются.
func (r *Repository) SaveWorkingHours(ctx context.Context, branchID string, hours entities.WorkingHours) error {
	payload, err := hours.Serialize()
	if err != nil {
		return fmt.Errorf("unexpected branch repository saveworkinghours error: %w", err)
	}

	query := `UPDATE branches
		SET working_hours = COALESCE(working_hours, '{}'::jsonb) || $1::jsonb,
			updated_at = NOW()
		WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, string(payload), branchID)
	if err != nil {
		return fmt.Errorf("unexpected branch repository saveworkinghours error: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return timing.ErrBranchNotFound
	}
	return nil
}

func (r *Repository) LoadNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := qb.
		Select("id", "name").
		From("branches").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected branch repository loadnames error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected branch repository loadnames error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("unexpected branch repository loadnames error: %w", err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected branch repository loadnames error: %w", err)
	}
	return names, nil
}
