package orderaction

import (
	"strings"

	"adminpanel/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isKnownAction(action entities.OrderAction) bool {
	switch action {
	case entities.ActionAccept, entities.ActionMarkReady, entities.ActionMarkDelivered,
		entities.ActionAssignRider, entities.ActionCancel, entities.ActionReprint:
		return true
	default:
		return false
	}
}

func normalizeReason(reason *string) (string, bool) {
	if reason == nil {
		return "", false
	}
	trimmed := strings.TrimSpace(*reason)
	return trimmed, trimmed != ""
}
