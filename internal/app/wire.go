//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"adminpanel/internal/gateway/auth"
	orderGateway "adminpanel/internal/gateway/grpc/order"
	"adminpanel/internal/gateway/printer"
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

	"adminpanel/pkg/logger"
	"adminpanel/pkg/token"
	"adminpanel/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	publisher *rabbitmq.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideBranchRepository,
		provideDriverRepository,
		provideMenuRepository,
		provideUserRepository,
		provideSessionStore,

		provideAuthGateway,
		provideTokenIssuer,
		provideOrderMutationClient,
		provideOrderGateway,
		providePrinter,

		provideServiceSession,
		provideServiceTiming,
		provideServiceHistory,
		dashboard.NewNotifier,
		provideServiceDashboard,
		provideServiceOrder,
		provideServiceBranchNames,
		provideServiceConnectivity,

		provideConnectivityCheckTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
		wire.Bind(new(ServiceTiming), new(*timing.Timing)),
		wire.Bind(new(ServiceHistory), new(*history.History)),
		wire.Bind(new(ServiceDashboard), new(*dashboard.Dashboard)),
		wire.Bind(new(ServiceOrder), new(*orderaction.Service)),
		wire.Bind(new(ServiceBranchNames), new(*branchnames.Cache)),
		wire.Bind(new(ServiceConnectivity), new(*connectivity.Monitor)),
		wire.Bind(new(TokenParser), new(*token.Issuer)),

		wire.Bind(new(sessionService.AttemptsStore), new(*sessionRepo.Store)),
		wire.Bind(new(sessionService.Authenticator), new(*auth.Gateway)),
		wire.Bind(new(sessionService.TokenIssuer), new(*token.Issuer)),
		wire.Bind(new(auth.UserRepository), new(*userRepo.Repository)),

		wire.Bind(new(timing.Repository), new(*branchRepo.Repository)),
		wire.Bind(new(timing.TxManager), new(*tx.Manager)),
		wire.Bind(new(branchnames.Repository), new(*branchRepo.Repository)),
		wire.Bind(new(history.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(dashboard.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dashboard.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(dashboard.MenuRepository), new(*menuRepo.Repository)),

		wire.Bind(new(orderaction.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderaction.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(orderaction.OrderMutator), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orderaction.Printer), new(*printer.Printer)),

		wire.Bind(new(connectivity_check.Monitor), new(*connectivity.Monitor)),
	)
	return &Application{}, nil
}
