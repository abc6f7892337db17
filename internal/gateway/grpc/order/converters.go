package order

import (
	"fmt"

	"adminpanel/internal/entities"
	proto "adminpanel/internal/generated/proto/orders"
)

func toUpdateStatusRequest(orderID string, status entities.OrderStatusType, reason *string, actor string) *proto.UpdateStatusRequest {
	req := &proto.UpdateStatusRequest{
		OrderId: orderID,
		Status:  status.String(),
		Actor:   actor,
	}
	if reason != nil {
		req.Reason = *reason
	}
	return req
}

func toManualAssignRequest(orderID, riderID string) *proto.ManualAssignRequest {
	return &proto.ManualAssignRequest{
		OrderId: orderID,
		RiderId: riderID,
	}
}

// rejection общий вид ответов мутаций.
type rejection interface {
	GetRejected() bool
	GetMessage() string
}

// fromResponse пустой ответ считается успешным.
func fromResponse(resp rejection) error {
	if !resp.GetRejected() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrRejected, resp.GetMessage())
}
