//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	proto "adminpanel/internal/generated/proto/orders"

	"google.golang.org/grpc"
)

type client interface {
	UpdateStatus(ctx context.Context, in *proto.UpdateStatusRequest, opts ...grpc.CallOption) (*proto.UpdateStatusResponse, error)
	ManualAssign(ctx context.Context, in *proto.ManualAssignRequest, opts ...grpc.CallOption) (*proto.ManualAssignResponse, error)
}
