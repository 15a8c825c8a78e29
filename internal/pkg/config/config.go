package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Binary int

const (
	BinaryService Binary = iota
	BinaryNotifyWorker
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type (
	Tasks struct {
		BiddingWindowReportInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Storage struct {
		Driver  string
		Migrate bool
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
	}

	PushService struct {
		GRPCHost string
	}

	Stripe struct {
		SecretKey string
		// Currency: валюта расчётов, ISO 4217 в верхнем регистре.
		Currency  string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Producer        Producer
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Producer struct {
		SendTimeout time.Duration
	}

	KafkaHandlers struct {
		TransitionEvent TransitionEvent
	}

	TransitionEvent struct {
		ProcessTimeout time.Duration
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks       Tasks
		Server      HTTPServer
		Storage     Storage
		Database    Database
		PushService PushService
		Stripe      Stripe
		Kafka       Kafka
		Log         Log
	}
)

// Load читает окружение и проверяет поля, обязательные для конкретного бинаря.
func Load(binary Binary) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	switch binary {
	case BinaryService:
		err = validateService(cfg)
	case BinaryNotifyWorker:
		err = validateNotifyWorker(cfg)
	default:
		err = fmt.Errorf("unknown binary %d", binary)
	}
	if err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	reportInterval, err := osGetEnvDuration("BACKGROUND_BIDDING_WINDOW_REPORT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerSendTimeout, err := osGetEnvDuration("KAFKA_PRODUCER_SEND_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	transitionEventTimeout, err := osGetEnvDuration("KAFKA_HANDLER_TRANSITION_EVENT_PROCESS_TIMEOUT")
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

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrate, err := osGetBool("POSTGRES_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			BiddingWindowReportInterval: reportInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Storage: Storage{
			Driver:  osGetEnvDefault("STORAGE_DRIVER", StorageDriverPostgres),
			Migrate: migrate,
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: maxConns,
		},
		PushService: PushService{
			GRPCHost: os.Getenv("PUSH_SERVICE_GRPC_HOST"),
		},
		Stripe: Stripe{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			Currency:  strings.ToUpper(osGetEnvDefault("STRIPE_CURRENCY", "USD")),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Producer: Producer{
				SendTimeout: producerSendTimeout,
			},
			Handlers: KafkaHandlers{
				TransitionEvent: TransitionEvent{
					ProcessTimeout: transitionEventTimeout,
				},
			},
		},
		Log: Log{
			Level: osGetEnvDefault("LOG_LEVEL", "info"),
		},
	}, nil
}

func validateService(cfg *Config) error {
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
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if err := validateDatabase(cfg.Database); err != nil {
			return err
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, cfg.Storage.Driver)
	}

	if cfg.Tasks.BiddingWindowReportInterval == time.Duration(0) {
		return errors.New("BACKGROUND_BIDDING_WINDOW_REPORT_INTERVAL is required")
	}

	if cfg.Stripe.SecretKey == "" {
		return errors.New("STRIPE_SECRET_KEY is required")
	}
	if !isCurrencyCode(cfg.Stripe.Currency) {
		return fmt.Errorf("STRIPE_CURRENCY must be a 3-letter ISO 4217 code, got %q", cfg.Stripe.Currency)
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Producer.SendTimeout == time.Duration(0) {
		return errors.New("KAFKA_PRODUCER_SEND_TIMEOUT is required")
	}

	return nil
}

func validateNotifyWorker(cfg *Config) error {
	if cfg.PushService.GRPCHost == "" {
		return errors.New("PUSH_SERVICE_GRPC_HOST is required")
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
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.TransitionEvent.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_TRANSITION_EVENT_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if db.MaxConns < 0 {
		return errors.New("POSTGRES_MAX_CONNS must not be negative")
	}
	return nil
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func osGetEnvDefault(s, fallback string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return fallback
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
