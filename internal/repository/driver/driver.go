package driver

import (
	"context"
	"fmt"

	"adminpanel/internal/entities"
	"adminpanel/internal/repository"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// availableCond свободен и на линии.
var availableCond = sq.Eq{
	"is_available": true,
	"status":       entities.DriverOnline.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountAvailable(ctx context.Context, scope entities.BranchScope) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("drivers").
		Where(availableCond)

	if cond := repository.BranchScopeCond("branch_ids", scope); cond != nil {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository countavailable error: %w", err)
	}

	var count int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected driver repository countavailable error: %w", err)
	}
	return count, nil
}

// ListAvailable курьеры, работающие хотя бы в одном из переданных филиалов.
func (r *Repository) ListAvailable(ctx context.Context, branchIDs []string) ([]entities.Driver, error) {
	query, args, err := qb.
		Select("id", "name", "phone", "is_available", "status", "branch_ids").
		From("drivers").
		Where(availableCond).
		Where(sq.Expr("branch_ids && ?", branchIDs)).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
	}
	defer rows.Close()

	driverModels := make([]DriverDB, 0, 8)
	for rows.Next() {
		var driverModel DriverDB
		err := rows.Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.IsAvailable,
			&driverModel.Status,
			&driverModel.BranchIDs,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
		}
		driverModels = append(driverModels, driverModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository listavailable error: %w", err)
	}

	return ToDomainList(driverModels), nil
}
