package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           string
	BranchIDs    []string
	Status       OrderStatusType
	Type         OrderType
	TotalAmount  decimal.Decimal
	Customer     Customer
	Items        []OrderItem
	RiderID      *string
	CancelReason *string
	CreatedAt    time.Time
}

type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDineIn   OrderType = "dine_in"
)

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) IsDelivery() bool {
	return t == OrderTypeDelivery
}

type OrderStatusType string

const (
	OrderPending              OrderStatusType = "pending"
	OrderPreparing            OrderStatusType = "preparing"
	OrderNeedsRiderAssignment OrderStatusType = "needs_rider_assignment"
	OrderRiderAssigned        OrderStatusType = "rider_assigned"
	OrderPickedUp             OrderStatusType = "pickedup"
	OrderDelivered            OrderStatusType = "delivered"
	OrderCompleted            OrderStatusType = "completed"
	OrderPaid                 OrderStatusType = "paid"
	OrderCancelled            OrderStatusType = "cancelled"
	OrderRefunded             OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// BillableStatuses статусы, которые попадают в выручку.
var BillableStatuses = []OrderStatusType{OrderDelivered, OrderCompleted, OrderPaid}

// IsBillable refunded исключается всегда, даже если словарь статусов
// у внешнего сервиса когда-нибудь пометит его как завершенный.
func (s OrderStatusType) IsBillable() bool {
	if s == OrderRefunded {
		return false
	}
	for _, billable := range BillableStatuses {
		if s == billable {
			return true
		}
	}
	return false
}

// HistoryStatuses статусы, доступные в истории заказов.
var HistoryStatuses = []OrderStatusType{OrderDelivered, OrderCancelled}

// OrderCursor позиция последнего заказа страницы (created_at DESC, id DESC).
type OrderCursor struct {
	CreatedAt time.Time
	ID        string
}

type OrderAction string

const (
	ActionAccept        OrderAction = "accept"
	ActionMarkReady     OrderAction = "mark_ready"
	ActionMarkDelivered OrderAction = "mark_delivered"
	ActionAssignRider   OrderAction = "assign_rider"
	ActionCancel        OrderAction = "cancel"
	ActionReprint       OrderAction = "reprint"
)

func (a OrderAction) String() string {
	return string(a)
}
