package history

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"adminpanel/internal/entities"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Query параметры выборки для хранилища. Границы дат уже нормализованы и включительны.
type Query struct {
	Scope    entities.BranchScope
	Statuses []entities.OrderStatusType
	From     *time.Time
	To       *time.Time
	After    *entities.OrderCursor
	Limit    int
}

type Request struct {
	BranchFilter entities.BranchFilter
	Statuses     []entities.OrderStatusType
	From         *time.Time
	To           *time.Time
	PageSize     int
	Cursor       string
}

type Page struct {
	Orders     []entities.Order
	NextCursor string
	HasMore    bool
	// CursorReset курсор относился к другому фильтру и был отброшен.
	CursorReset bool
}

type History struct {
	repository Repository
	location   *time.Location
}

func New(repository Repository, location *time.Location) *History {
	if location == nil {
		location = time.Local
	}
	return &History{
		repository: repository,
		location:   location,
	}
}

// Location часовой пояс бизнеса, в нем разбираются даты фильтра.
func (s *History) Location() *time.Location {
	return s.location
}

func (s *History) Query(ctx context.Context, principal entities.Principal, req Request) (Page, error) {
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		return Page{}, fmt.Errorf("%w: %d", ErrInvalidPageSize, req.PageSize)
	}

	statuses, err := normalizeStatuses(req.Statuses)
	if err != nil {
		return Page{}, err
	}

	from, to := s.normalizeRange(req.From, req.To)
	if from != nil && to != nil && from.After(*to) {
		return Page{}, ErrInvalidDateRange
	}

	fingerprint := filterFingerprint(req.BranchFilter, statuses, from, to)

	page := Page{Orders: []entities.Order{}}

	var after *entities.OrderCursor
	if req.Cursor != "" {
		token, err := decodeCursor(req.Cursor)
		if err != nil {
			return Page{}, err
		}
		if token.Filter == fingerprint {
			after = &entities.OrderCursor{CreatedAt: token.CreatedAt, ID: token.ID}
		} else {
			page.CursorReset = true
		}
	}

	scope := principal.Scope(req.BranchFilter)
	if scope.IsEmpty() {
		return page, nil
	}

	orders, err := s.repository.ListHistory(ctx, Query{
		Scope:    scope,
		Statuses: statuses,
		From:     from,
		To:       to,
		After:    after,
		Limit:    pageSize,
	})
	if err != nil {
		return Page{}, fmt.Errorf("query order history: %w", err)
	}

	page.Orders = orders
	page.HasMore = len(orders) == pageSize
	if page.HasMore {
		page.NextCursor = encodeCursor(orders[len(orders)-1], fingerprint)
	}
	return page, nil
}

// normalizeRange начало дня 00:00:00 и конец дня 23:59:59 в часовом поясе бизнеса.
func (s *History) normalizeRange(from, to *time.Time) (*time.Time, *time.Time) {
	var start, end *time.Time
	if from != nil {
		local := from.In(s.location)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.location)
		start = &day
	}
	if to != nil {
		local := to.In(s.location)
		day := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), s.location)
		end = &day
	}
	return start, end
}

func filterFingerprint(filter entities.BranchFilter, statuses []entities.OrderStatusType, from, to *time.Time) string {
	sorted := make([]string, 0, len(statuses))
	for _, status := range statuses {
		sorted = append(sorted, status.String())
	}
	// набор статусов, порядок в запросе не важен
	slices.Sort(sorted)

	parts := make([]string, 0, 3+len(sorted))
	parts = append(parts, filter.String())
	parts = append(parts, sorted...)
	parts = append(parts, formatBound(from), formatBound(to))
	return strings.Join(parts, "|")
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
