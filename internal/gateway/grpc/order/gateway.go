package order

import (
	"context"
	"fmt"
	"time"

	"adminpanel/internal/entities"
	proto "adminpanel/internal/generated/proto/orders"
	"adminpanel/internal/service/orderaction"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	serviceName = "order-service"

	MethodUpdateStatus = proto.OrderMutationService_UpdateStatus_FullMethodName
	MethodManualAssign = proto.OrderMutationService_ManualAssign_FullMethodName

	defaultCallTimeout = 5 * time.Second
)

// OrderGateway мутации заказа без ретраев: повтор перехода статуса
// должен решать пользователь, а не клиент.
type OrderGateway struct {
	client      client
	callTimeout time.Duration
}

func New(client client, callTimeout time.Duration) *OrderGateway {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}

	return &OrderGateway{
		client:      client,
		callTimeout: callTimeout,
	}
}

func (o *OrderGateway) UpdateStatus(
	ctx context.Context,
	orderID string,
	status entities.OrderStatusType,
	reason *string,
	actor string,
) error {
	req := toUpdateStatusRequest(orderID, status, reason, actor)

	var resp *proto.UpdateStatusResponse
	err := o.call(ctx, MethodUpdateStatus, func(ctx context.Context) (err error) {
		resp, err = o.client.UpdateStatus(ctx, req)
		return err
	})
	if err == nil {
		err = fromResponse(resp)
	}
	if err != nil {
		return fmt.Errorf("gateway order, update status: %s: %w", orderID, err)
	}
	return nil
}

func (o *OrderGateway) ManualAssign(ctx context.Context, orderID string, riderID string) error {
	req := toManualAssignRequest(orderID, riderID)

	var resp *proto.ManualAssignResponse
	err := o.call(ctx, MethodManualAssign, func(ctx context.Context) (err error) {
		resp, err = o.client.ManualAssign(ctx, req)
		return err
	})
	if err == nil {
		err = fromResponse(resp)
	}
	if err != nil {
		return fmt.Errorf("gateway order, manual assign: %s: %w", orderID, err)
	}
	return nil
}

func (o *OrderGateway) call(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)

	grpcCode := getGRPCCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())
	GatewayRequestsTotal.WithLabelValues(serviceName, method, grpcCode).Inc()

	if err != nil {
		return mapError(err)
	}
	return nil
}

func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", orderaction.ErrOrderNotFound, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", orderaction.ErrActionNotAllowed, st.Message())
	default:
		return err
	}
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
