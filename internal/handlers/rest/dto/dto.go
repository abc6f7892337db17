package dto

import (
	"encoding/json"
	"net/http"

	"adminpanel/internal/entities"
	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/service/connectivity"
	"adminpanel/pkg/logger"
)

const DeviceIDHeader = "X-Device-ID"

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, msg string) error {
	return WriteJSON(w, status, api.Error{Error: msg})
}

func FromPrincipal(p entities.Principal) api.Principal {
	return api.Principal{
		UserID:    p.UserID,
		Email:     p.Email,
		Role:      p.Role.String(),
		BranchIDs: nonNil(p.BranchIDs),
	}
}

func FromOrder(o entities.Order) api.Order {
	items := make([]api.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, api.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
		})
	}
	return api.Order{
		ID:          o.ID,
		BranchIDs:   nonNil(o.BranchIDs),
		Status:      o.Status.String(),
		Type:        o.Type.String(),
		TotalAmount: o.TotalAmount.StringFixed(2),
		Customer: api.Customer{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Items:        items,
		RiderID:      o.RiderID,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []api.Order {
	result := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromOrder(o))
	}
	return result
}

func FromDrivers(drivers []entities.Driver) []api.Driver {
	result := make([]api.Driver, 0, len(drivers))
	for _, d := range drivers {
		result = append(result, api.Driver{
			ID:        d.ID,
			Name:      d.Name,
			Phone:     d.Phone,
			Status:    d.Status.String(),
			BranchIDs: nonNil(d.BranchIDs),
		})
	}
	return result
}

// BranchFilter пустой или "all" - все филиалы.
func BranchFilter(raw string) entities.BranchFilter {
	if raw == "" || raw == "all" {
		return entities.AllBranches()
	}
	return entities.SpecificBranch(raw)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func FromConnectivity(s connectivity.Status) api.Connectivity {
	result := api.Connectivity{
		Online: s.Online,
	}
	if banner := s.Banner(); banner != "" {
		result.Banner = &banner
	}
	if !s.CheckedAt.IsZero() {
		checkedAt := s.CheckedAt
		result.CheckedAt = &checkedAt
	}
	return result
}

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// WriteResult пишет тело ответа, ошибку кодирования только логирует.
func WriteResult(w http.ResponseWriter, log errorLogger, status int, body any) {
	err := WriteJSON(w, status, body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
