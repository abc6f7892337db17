package grpcclient

import (
	"context"
	"fmt"
	"time"

	"adminpanel/internal/pkg/config"
	"adminpanel/pkg/logger"
	"adminpanel/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepalivePermitWithoutStream = false

	readyTimeout = 5 * time.Second
)

func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.OrderService) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                KeepaliveTime,
			Timeout:             KeepaliveTimeout,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	err = backoff_adapter.Ping(ctx, grpcLog, "gRPC", func(ctx context.Context) error {
		return waitReady(ctx, conn)
	})
	if err != nil {
		connCloseErr := conn.Close()
		if connCloseErr != nil {
			return nil, fmt.Errorf("gRPC connection: %w (failed to close: %v)", err, connCloseErr)
		}
		return nil, fmt.Errorf("gRPC connection: %w", err)
	}

	return conn, nil
}

type stateConn interface {
	Connect()
	GetState() connectivity.State
	WaitForStateChange(ctx context.Context, sourceState connectivity.State) bool
}

func waitReady(ctx context.Context, conn stateConn) error {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("order service not ready, last state %s", state)
		}
	}
}

// WatchState вызывает onChange на каждый переход канала в Ready или TransientFailure.
// Блокирует до отмены ctx.
func WatchState(ctx context.Context, conn stateConn, onChange func()) {
	state := conn.GetState()
	for conn.WaitForStateChange(ctx, state) {
		state = conn.GetState()
		if state == connectivity.Ready || state == connectivity.TransientFailure {
			onChange()
		}
	}
}
