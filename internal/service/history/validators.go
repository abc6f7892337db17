package history

import (
	"fmt"

	"adminpanel/internal/entities"
)

func normalizeStatuses(statuses []entities.OrderStatusType) ([]entities.OrderStatusType, error) {
	if len(statuses) == 0 {
		return append([]entities.OrderStatusType(nil), entities.HistoryStatuses...), nil
	}

	seen := make(map[entities.OrderStatusType]struct{}, len(statuses))
	result := make([]entities.OrderStatusType, 0, len(statuses))
	for _, status := range statuses {
		if !isHistoryStatus(status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		if _, dup := seen[status]; dup {
			continue
		}
		seen[status] = struct{}{}
		result = append(result, status)
	}
	return result, nil
}

func isHistoryStatus(status entities.OrderStatusType) bool {
	for _, allowed := range entities.HistoryStatuses {
		if status == allowed {
			return true
		}
	}
	return false
}
