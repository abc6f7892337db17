package orderaction

import (
	"slices"

	"adminpanel/internal/entities"
)

var (
	terminalActions = []entities.OrderAction{entities.ActionReprint}
	noActions       = []entities.OrderAction{}
)

// AvailableActions набор действий зависит от статуса и типа заказа.
// Для отмененных и возвращенных заказов действий нет, даже перепечатки.
func AvailableActions(order entities.Order) []entities.OrderAction {
	delivery := order.Type.IsDelivery()

	var actions []entities.OrderAction
	switch order.Status {
	case entities.OrderPending:
		actions = []entities.OrderAction{entities.ActionAccept, entities.ActionCancel, entities.ActionReprint}
	case entities.OrderPreparing:
		if delivery {
			actions = []entities.OrderAction{entities.ActionMarkReady, entities.ActionCancel, entities.ActionReprint}
		} else {
			actions = []entities.OrderAction{entities.ActionMarkDelivered, entities.ActionCancel, entities.ActionReprint}
		}
	case entities.OrderNeedsRiderAssignment, entities.OrderRiderAssigned:
		if delivery {
			actions = []entities.OrderAction{entities.ActionAssignRider, entities.ActionCancel, entities.ActionReprint}
		} else {
			actions = terminalActions
		}
	case entities.OrderPickedUp:
		actions = []entities.OrderAction{entities.ActionMarkDelivered, entities.ActionReprint}
	case entities.OrderDelivered, entities.OrderCompleted, entities.OrderPaid:
		actions = terminalActions
	default:
		actions = noActions
	}

	return slices.Clone(actions)
}

func isAllowed(order entities.Order, action entities.OrderAction) bool {
	return slices.Contains(AvailableActions(order), action)
}

// targetStatus статус, который запрашивается у сервиса заказов.
func targetStatus(action entities.OrderAction) (entities.OrderStatusType, bool) {
	switch action {
	case entities.ActionAccept:
		return entities.OrderPreparing, true
	case entities.ActionMarkReady:
		return entities.OrderNeedsRiderAssignment, true
	case entities.ActionMarkDelivered:
		return entities.OrderDelivered, true
	case entities.ActionCancel:
		return entities.OrderCancelled, true
	default:
		return "", false
	}
}
