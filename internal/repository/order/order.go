package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"adminpanel/internal/entities"
	"adminpanel/internal/repository"
	"adminpanel/internal/service/history"
	"adminpanel/internal/service/orderaction"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"branch_ids",
	"status",
	"order_type",
	"total_amount::text",
	"customer",
	"items",
	"rider_id",
	"cancel_reason",
	"created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListHistory страница истории по убыванию (created_at, id), курсор исключающий.
func (r *Repository) ListHistory(ctx context.Context, query history.Query) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": statusesToDB(query.Statuses)})

	if cond := repository.BranchScopeCond("branch_ids", query.Scope); cond != nil {
		builder = builder.Where(cond)
	}
	if query.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *query.From})
	}
	if query.To != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *query.To})
	}
	if query.After != nil {
		builder = builder.Where(sq.Expr("(created_at, id) < (?, ?)", query.After.CreatedAt, query.After.ID))
	}

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(query.Limit))

	orders, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listhistory error: %w", err)
	}
	return orders, nil
}

func (r *Repository) ListRecent(ctx context.Context, scope entities.BranchScope, limit int) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders")

	if cond := repository.BranchScopeCond("branch_ids", scope); cond != nil {
		builder = builder.Where(cond)
	}

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	orders, err := r.list(ctx, builder)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listrecent error: %w", err)
	}
	return orders, nil
}

func (r *Repository) CountSince(ctx context.Context, scope entities.BranchScope, since time.Time) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("orders").
		Where(sq.GtOrEq{"created_at": since})

	if cond := repository.BranchScopeCond("branch_ids", scope); cond != nil {
		builder = builder.Where(cond)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countsince error: %w", err)
	}

	var count int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected order repository countsince error: %w", err)
	}
	return count, nil
}

// TotalsByStatusSince суммы по статусам; какие из них считать выручкой, решает сервис.
func (r *Repository) TotalsByStatusSince(
	ctx context.Context,
	scope entities.BranchScope,
	since time.Time,
) (map[entities.OrderStatusType]decimal.Decimal, error) {
	builder := qb.
		Select("status", "COALESCE(SUM(total_amount), 0)::text").
		From("orders").
		Where(sq.GtOrEq{"created_at": since})

	if cond := repository.BranchScopeCond("branch_ids", scope); cond != nil {
		builder = builder.Where(cond)
	}

	query, args, err := builder.GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository totals error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository totals error: %w", err)
	}
	defer rows.Close()

	totals := make(map[entities.OrderStatusType]decimal.Decimal)
	for rows.Next() {
		var status, sum string
		if err := rows.Scan(&status, &sum); err != nil {
			return nil, fmt.Errorf("unexpected order repository totals error: %w", err)
		}

		total, err := decimal.NewFromString(sum)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository totals error: %w", err)
		}
		totals[entities.OrderStatusType(status)] = total
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository totals error: %w", err)
	}
	return totals, nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderaction.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	order, err := ToDomain(orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}
	return order, nil
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.Order, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ToDomainList(orderModels)
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.BranchIDs,
		&orderModel.Status,
		&orderModel.OrderType,
		&orderModel.TotalAmount,
		&orderModel.Customer,
		&orderModel.Items,
		&orderModel.RiderID,
		&orderModel.CancelReason,
		&orderModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
