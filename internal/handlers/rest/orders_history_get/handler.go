package orders_history_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"adminpanel/internal/entities"
	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/handlers/rest/dto"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/internal/service/history"
	"adminpanel/pkg/logger"
)

const dateLayout = "2006-01-02"

var errBadQuery = errors.New("invalid query parameter")

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	req, err := parseRequest(r.URL.Query(), h.service.Location())
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		return
	}

	page, err := h.service.Query(r.Context(), principal, req)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrInvalidStatus),
			errors.Is(err, history.ErrInvalidPageSize),
			errors.Is(err, history.ErrInvalidDateRange),
			errors.Is(err, history.ErrInvalidCursor):
			h.writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("user", principal.UserID),
			).Error("query order history")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	body := api.OrderHistoryPage{
		Orders:      dto.FromOrders(page.Orders),
		HasMore:     page.HasMore,
		CursorReset: page.CursorReset,
	}
	if page.NextCursor != "" {
		body.NextCursor = &page.NextCursor
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	err := dto.WriteJSON(w, status, body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// parseRequest ?branch_id=&status=delivered,cancelled&from=2026-01-01&to=2026-01-31&page_size=20&cursor=
func parseRequest(q url.Values, location *time.Location) (history.Request, error) {
	req := history.Request{
		BranchFilter: dto.BranchFilter(q.Get("branch_id")),
		Cursor:       q.Get("cursor"),
	}

	for _, raw := range q["status"] {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				req.Statuses = append(req.Statuses, entities.OrderStatusType(status))
			}
		}
	}

	var err error
	if req.From, err = parseDate(q.Get("from"), location); err != nil {
		return history.Request{}, fmt.Errorf("%w from: %w", errBadQuery, err)
	}
	if req.To, err = parseDate(q.Get("to"), location); err != nil {
		return history.Request{}, fmt.Errorf("%w to: %w", errBadQuery, err)
	}

	if raw := q.Get("page_size"); raw != "" {
		req.PageSize, err = strconv.Atoi(raw)
		if err != nil {
			return history.Request{}, fmt.Errorf("%w page_size: %w", errBadQuery, err)
		}
	}

	return req, nil
}

func parseDate(raw string, location *time.Location) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation(dateLayout, raw, location); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
