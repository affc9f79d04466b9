package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// EnvFileVar указывает на .env-файл; его значения не перекрывают уже заданное окружение.
const EnvFileVar = "ORDER_ENV_FILE"

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска сервиса заказов.
// Значения читаются из окружения, флаги командной строки их переопределяют.
type Config struct {
	HTTPAddr    string `env:"ORDER_HTTP_ADDR" envDefault:":12031"`
	GRPCAddr    string `env:"ORDER_GRPC_ADDR" envDefault:":50051"`
	MetricsAddr string `env:"ORDER_METRICS_ADDR" envDefault:":9090"`

	StorageDriver       string `env:"ORDER_STORAGE_DRIVER" envDefault:"memory"`
	PostgresDSN         string `env:"ORDER_POSTGRES_DSN"`
	PostgresAutoMigrate bool   `env:"ORDER_POSTGRES_AUTO_MIGRATE" envDefault:"true"`

	StationServiceURL string        `env:"ORDER_STATION_SERVICE_URL" envDefault:"http://ts-station-service:12345"`
	StationTimeout    time.Duration `env:"ORDER_STATION_TIMEOUT" envDefault:"5s"`

	KafkaBrokers  []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic    string   `env:"ORDER_KAFKA_TOPIC" envDefault:"ts.order.events"`
	KafkaClientID string   `env:"ORDER_KAFKA_CLIENT_ID" envDefault:"ts-order-service"`

	SecurityWindow  time.Duration `env:"ORDER_SECURITY_WINDOW" envDefault:"1h"`
	ShutdownTimeout time.Duration `env:"ORDER_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"ORDER_LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig возвращает значения по умолчанию без учёта окружения.
func DefaultConfig() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("parse default config: %v", err))
	}
	return cfg
}

// LoadConfig читает окружение (и .env-файл из ORDER_ENV_FILE) и применяет флаги из args.
func LoadConfig(args []string) (Config, error) {
	if path := strings.TrimSpace(os.Getenv(EnvFileVar)); path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}

	fs := flag.NewFlagSet("order-service", flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP API address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health address")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "metrics and health HTTP address")
	fs.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "storage driver: memory|postgres")
	fs.StringVar(&cfg.PostgresDSN, "dsn", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.StationServiceURL, "station-url", cfg.StationServiceURL, "station service base URL")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			errs = append(errs, errors.New("ORDER_POSTGRES_DSN is required for postgres storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver: %q", c.StorageDriver))
	}
	if strings.TrimSpace(c.StationServiceURL) == "" {
		errs = append(errs, errors.New("station service URL is required"))
	}
	if c.SecurityWindow <= 0 {
		errs = append(errs, errors.New("security window must be positive"))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}

	return errors.Join(errs...)
}
