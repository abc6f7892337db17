package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		ConnectivityCheckInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		LoginRateLimit   int           // запросов в секунду на один device id
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	OrderService struct {
		GRPCHost    string
		CallTimeout time.Duration
	}

	Kafka struct {
		Brokers       string
		Topic         string
		ConsumerGroup string
		Sarama        Sarama
		Handlers      KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	RabbitMQ struct {
		URL        string
		PrintQueue string
	}

	Auth struct {
		JWTSecret         string
		TokenTTL          time.Duration
		MaxFailedAttempts int
		LockoutDuration   time.Duration
		SessionStorePath  string
	}

	Connectivity struct {
		Host        string
		Timeout     time.Duration
		SettleDelay time.Duration
	}

	Dashboard struct {
		RefreshInterval   time.Duration
		RecentOrdersLimit int
	}

	History struct {
		Location *time.Location
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		OrderService OrderService
		Kafka        Kafka
		RabbitMQ     RabbitMQ
		Auth         Auth
		Connectivity Connectivity
		Dashboard    Dashboard
		History      History
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	checkInterval, err := osGetEnvDuration("BACKGROUND_CONNECTIVITY_CHECK_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	loginRateLimit, err := osGetInt("MIDDLEWARE_LOGIN_RATE_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	callTimeout, err := osGetEnvDuration("ORDER_SERVICE_CALL_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	tokenTTL, err := osGetEnvDuration("AUTH_TOKEN_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxFailedAttempts, err := osGetInt("AUTH_MAX_FAILED_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	lockoutDuration, err := osGetEnvDuration("AUTH_LOCKOUT_DURATION")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	connectivityTimeout, err := osGetEnvDuration("CONNECTIVITY_CHECK_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settleDelay, err := osGetEnvDuration("CONNECTIVITY_SETTLE_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	refreshInterval, err := osGetEnvDuration("DASHBOARD_REFRESH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	recentOrdersLimit, err := osGetInt("DASHBOARD_RECENT_ORDERS_LIMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	location, err := osGetLocation("BUSINESS_TIMEZONE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			ConnectivityCheckInterval: checkInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			LoginRateLimit:   loginRateLimit,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		OrderService: OrderService{
			GRPCHost:    os.Getenv("ORDER_SERVICE_GRPC_HOST"),
			CallTimeout: callTimeout,
		},
		Kafka: Kafka{
			Brokers:       os.Getenv("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup: os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		RabbitMQ: RabbitMQ{
			URL:        os.Getenv("RABBITMQ_URL"),
			PrintQueue: os.Getenv("RABBITMQ_PRINT_QUEUE"),
		},
		Auth: Auth{
			JWTSecret:         os.Getenv("AUTH_JWT_SECRET"),
			TokenTTL:          tokenTTL,
			MaxFailedAttempts: maxFailedAttempts,
			LockoutDuration:   lockoutDuration,
			SessionStorePath:  os.Getenv("AUTH_SESSION_STORE_PATH"),
		},
		Connectivity: Connectivity{
			Host:        os.Getenv("CONNECTIVITY_CHECK_HOST"),
			Timeout:     connectivityTimeout,
			SettleDelay: settleDelay,
		},
		Dashboard: Dashboard{
			RefreshInterval:   refreshInterval,
			RecentOrdersLimit: recentOrdersLimit,
		},
		History: History{
			Location: location,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.LoginRateLimit == 0 {
		return errors.New("MIDDLEWARE_LOGIN_RATE_LIMIT is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.ConnectivityCheckInterval == time.Duration(0) {
		return errors.New("BACKGROUND_CONNECTIVITY_CHECK_INTERVAL is required")
	}

	if cfg.OrderService.GRPCHost == "" {
		return errors.New("ORDER_SERVICE_GRPC_HOST is required")
	}
	if cfg.OrderService.CallTimeout == time.Duration(0) {
		return errors.New("ORDER_SERVICE_CALL_TIMEOUT is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	if cfg.RabbitMQ.URL == "" {
		return errors.New("RABBITMQ_URL is required")
	}
	if cfg.RabbitMQ.PrintQueue == "" {
		return errors.New("RABBITMQ_PRINT_QUEUE is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if cfg.Auth.TokenTTL == time.Duration(0) {
		return errors.New("AUTH_TOKEN_TTL is required")
	}
	if cfg.Auth.SessionStorePath == "" {
		return errors.New("AUTH_SESSION_STORE_PATH is required")
	}
	// MaxFailedAttempts, LockoutDuration, Connectivity и Dashboard
	// необязательные: сервисы подставляют значения по умолчанию

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetLocation пустое значение - локальная зона процесса.
func osGetLocation(s string) (*time.Location, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Local, nil
	}

	res, err := time.LoadLocation(val)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone for %s=%q: %w", s, val, err)
	}
	return res, nil
}
