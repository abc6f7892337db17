package order

import (
	"fmt"

	"adminpanel/internal/entities"

	"github.com/shopspring/decimal"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	total, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("order %s total amount: %w", o.ID, err)
	}

	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, entities.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	branchIDs := o.BranchIDs
	if branchIDs == nil {
		branchIDs = []string{}
	}

	return &entities.Order{
		ID:          o.ID,
		BranchIDs:   branchIDs,
		Status:      entities.OrderStatusType(o.Status),
		Type:        entities.OrderType(o.OrderType),
		TotalAmount: total,
		Customer: entities.Customer{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		Items:        items,
		RiderID:      o.RiderID,
		CancelReason: o.CancelReason,
		CreatedAt:    o.CreatedAt,
	}, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	result := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		order, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	return result, nil
}

func statusesToDB(statuses []entities.OrderStatusType) []string {
	result := make([]string, len(statuses))
	for i, status := range statuses {
		result[i] = status.String()
	}
	return result
}
