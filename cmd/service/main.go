package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "adminpanel/internal/app"
	orderstatushandler "adminpanel/internal/handlers/kafka-consumer/order_status_changed"
	"adminpanel/internal/handlers/rest/branch_names_get"
	"adminpanel/internal/handlers/rest/connectivity_get"
	"adminpanel/internal/handlers/rest/connectivity_retry_post"
	"adminpanel/internal/handlers/rest/dashboard_get"
	"adminpanel/internal/handlers/rest/dashboard_live_get"
	"adminpanel/internal/handlers/rest/healthcheck_head"
	"adminpanel/internal/handlers/rest/login_post"
	"adminpanel/internal/handlers/rest/order_action_post"
	"adminpanel/internal/handlers/rest/order_assign_post"
	"adminpanel/internal/handlers/rest/order_get"
	"adminpanel/internal/handlers/rest/order_riders_get"
	"adminpanel/internal/handlers/rest/orders_history_get"
	"adminpanel/internal/handlers/rest/ping_get"
	"adminpanel/internal/handlers/rest/session_get"
	"adminpanel/internal/handlers/rest/timings_discard_delete"
	"adminpanel/internal/handlers/rest/timings_draft_get"
	"adminpanel/internal/handlers/rest/timings_get"
	"adminpanel/internal/handlers/rest/timings_patch"
	"adminpanel/internal/handlers/rest/timings_save_post"
	"adminpanel/internal/pkg/config"
	"adminpanel/internal/pkg/dotenv"
	"adminpanel/internal/pkg/grpcclient"
	"adminpanel/internal/pkg/kafka"
	metrics_system "adminpanel/internal/pkg/metrics"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/internal/pkg/middlewares/graceful_shutdown"
	"adminpanel/internal/pkg/middlewares/metrics"
	"adminpanel/internal/pkg/middlewares/rate_limiter"
	"adminpanel/internal/pkg/middlewares/request_id"
	"adminpanel/internal/pkg/middlewares/timeout"
	"adminpanel/internal/pkg/postgres"
	"adminpanel/internal/pkg/rabbitmq"
	"adminpanel/pkg/logger"
	"adminpanel/pkg/logger/zap_adapter"
	"adminpanel/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting admin-panel application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.OrderService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
				logger.NewField("error", err),
			)
		}
	}()

	rabbit, err := rabbitmq.Dial(ctx, log, &cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq: %w", err)
	}
	defer func() {
		if err := rabbit.Close(); err != nil {
			runLog.Error("failed to close rabbitmq connection",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, rabbit, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.ServiceConnectivity.Stop()

	// смена состояния канала к сервису заказов - повод перепроверить сеть
	go grpcclient.WatchState(ctx, conn, businessApp.ServiceConnectivity.Trigger)

	metrics_system.StartSystemMetricsCollector(ctx, businessApp.Notifier)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// kafka consumer
	kafkaHandler := orderstatushandler.New(log, businessApp.ServiceDashboard, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)

	consumer, err := kafka.NewConsumer(ctx, log, &cfg.Kafka, kafkaHandler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)
		if err := consumer.Start(ongoingCtx); err != nil {
			consumerErr <- err
		}
	}()
	// kafka consumer

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server, pool, rabbit),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// WriteTimeout не задан: /dashboard/live держит соединение часами,
		// остальные ручки ограничены timeout middleware
		IdleTimeout: 60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	// живые подписки дашборда и consumer завершаются по ongoingCtx
	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if err := consumer.Close(); err != nil {
		runLog.Error("failed to close Kafka consumer", logger.NewField("error", err))
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg config.HTTPServer,
	checkers ...healthcheck_head.Checker,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(request_id.Middleware)

	// websocket запросы timeout middleware пропускает без дедлайна
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, checkers...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные ручки: экран входа и плашка сети видны до авторизации
	loginLimiter := token_bucket.NewKeyedBucket(cfg.LoginRateLimit, float64(cfg.LoginRateLimit))
	router.Handle("/login", rate_limiter.KeyedMiddleware(log, cfg.LoginRateLimit, loginLimiter)(
		login_post.New(log, app.ServiceSession),
	)).Methods("POST")
	router.Handle("/session", session_get.New(log, app.ServiceSession)).Methods("GET")
	router.Handle("/connectivity", connectivity_get.New(log, app.ServiceConnectivity)).Methods("GET")
	router.Handle("/connectivity/retry", connectivity_retry_post.New(log, app.ServiceConnectivity)).Methods("POST")

	protected := router.NewRoute().Subrouter()
	protected.Use(auth.Middleware(log, app.Tokens))

	protected.Handle("/dashboard", dashboard_get.New(log, app.ServiceDashboard)).Methods("GET")
	protected.Handle("/dashboard/live", dashboard_live_get.New(log, app.ServiceDashboard)).Methods("GET")

	// /orders/history раньше /orders/{id}
	protected.Handle("/orders/history", orders_history_get.New(log, app.ServiceHistory)).Methods("GET")
	protected.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	protected.Handle("/orders/{id}/actions", order_action_post.New(log, app.ServiceOrder)).Methods("POST")
	protected.Handle("/orders/{id}/riders", order_riders_get.New(log, app.ServiceOrder)).Methods("GET")
	protected.Handle("/orders/{id}/rider", order_assign_post.New(log, app.ServiceOrder)).Methods("POST")

	protected.Handle("/branches/names", branch_names_get.New(log, app.ServiceBranchNames)).Methods("GET")
	protected.Handle("/branches/{id}/timings", timings_get.New(log, app.ServiceTiming)).Methods("GET")
	protected.Handle("/timings/draft", timings_draft_get.New(log, app.ServiceTiming)).Methods("GET")
	protected.Handle("/timings/draft", timings_patch.New(log, app.ServiceTiming)).Methods("PATCH")
	protected.Handle("/timings/draft", timings_discard_delete.New(log, app.ServiceTiming)).Methods("DELETE")
	protected.Handle("/timings/draft/save", timings_save_post.New(log, app.ServiceTiming)).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
