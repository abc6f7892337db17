package app

import (
	"context"
	"fmt"
	"net"

	"adminpanel/internal/gateway/auth"
	orderGateway "adminpanel/internal/gateway/grpc/order"
	"adminpanel/internal/gateway/printer"
	proto "adminpanel/internal/generated/proto/orders"
	"adminpanel/internal/handlers/tasks/connectivity_check"
	"adminpanel/internal/pkg/config"
	"adminpanel/internal/pkg/rabbitmq"
	branchRepo "adminpanel/internal/repository/branch"
	driverRepo "adminpanel/internal/repository/driver"
	menuRepo "adminpanel/internal/repository/menu"
	orderRepo "adminpanel/internal/repository/order"
	sessionRepo "adminpanel/internal/repository/session"
	userRepo "adminpanel/internal/repository/user"
	"adminpanel/internal/service/branchnames"
	"adminpanel/internal/service/connectivity"
	"adminpanel/internal/service/dashboard"
	"adminpanel/internal/service/history"
	"adminpanel/internal/service/orderaction"
	sessionService "adminpanel/internal/service/session"
	"adminpanel/internal/service/timing"

	"adminpanel/pkg/background"
	"adminpanel/pkg/logger"
	"adminpanel/pkg/querier"
	"adminpanel/pkg/token"
	"adminpanel/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideBranchRepository(querier *querier.Querier) *branchRepo.Repository {
	return branchRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideMenuRepository(querier *querier.Querier) *menuRepo.Repository {
	return menuRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideSessionStore(cfg *config.Config) (*sessionRepo.Store, error) {
	store, err := sessionRepo.New(cfg.Auth.SessionStorePath)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	return store, nil
}

func provideAuthGateway(users auth.UserRepository) *auth.Gateway {
	return auth.New(users)
}

func provideTokenIssuer(cfg *config.Config) *token.Issuer {
	return token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideOrderMutationClient(conn *grpc.ClientConn) proto.OrderMutationServiceClient {
	return proto.NewOrderMutationServiceClient(conn)
}

func provideOrderGateway(client proto.OrderMutationServiceClient, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(client, cfg.OrderService.CallTimeout)
}

func providePrinter(publisher *rabbitmq.Client, cfg *config.Config) *printer.Printer {
	return printer.New(publisher, cfg.RabbitMQ.PrintQueue)
}

func provideServiceSession(
	store sessionService.AttemptsStore,
	authenticator sessionService.Authenticator,
	tokens sessionService.TokenIssuer,
	cfg *config.Config,
) *sessionService.Service {
	return sessionService.New(store, authenticator, tokens, sessionService.Config{
		MaxFailedAttempts: cfg.Auth.MaxFailedAttempts,
		LockoutDuration:   cfg.Auth.LockoutDuration,
	})
}

func provideServiceTiming(repository timing.Repository, txManager timing.TxManager) *timing.Timing {
	return timing.New(repository, txManager)
}

func provideServiceHistory(repository history.Repository, cfg *config.Config) *history.History {
	return history.New(repository, cfg.History.Location)
}

func provideServiceDashboard(
	orders dashboard.OrderRepository,
	drivers dashboard.DriverRepository,
	menu dashboard.MenuRepository,
	notifier *dashboard.Notifier,
	cfg *config.Config,
) *dashboard.Dashboard {
	return dashboard.New(orders, drivers, menu, notifier, dashboard.Config{
		RefreshInterval:   cfg.Dashboard.RefreshInterval,
		RecentOrdersLimit: cfg.Dashboard.RecentOrdersLimit,
		Location:          cfg.History.Location,
	})
}

func provideServiceOrder(
	orders orderaction.OrderRepository,
	drivers orderaction.DriverRepository,
	mutator orderaction.OrderMutator,
	printer orderaction.Printer,
) *orderaction.Service {
	return orderaction.New(orders, drivers, mutator, printer)
}

func provideServiceBranchNames(repository branchnames.Repository) *branchnames.Cache {
	return branchnames.New(repository)
}

func provideServiceConnectivity(cfg *config.Config) *connectivity.Monitor {
	return connectivity.New(net.DefaultResolver, connectivity.Config{
		Host:        cfg.Connectivity.Host,
		Timeout:     cfg.Connectivity.Timeout,
		SettleDelay: cfg.Connectivity.SettleDelay,
	})
}

func provideConnectivityCheckTask(
	log logger.Logger,
	monitor connectivity_check.Monitor,
	cfg *config.Config,
) *connectivity_check.ConnectivityCheck {
	return connectivity_check.NewConnectivityCheck(log, monitor, cfg.Tasks.ConnectivityCheckInterval)
}

func provideTaskList(
	connectivityCheckTask *connectivity_check.ConnectivityCheck,
) []background.Task {
	return []background.Task{
		connectivityCheckTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
