package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/academix/ledger-service/pkg/kafka"
	"github.com/academix/ledger-service/pkg/observability"
	"github.com/academix/ledger-service/pkg/postgres"
)

// Config holds all configuration for the ledger service.
type Config struct {
	// gRPC server port
	GRPCPort int
	// HTTP metrics/health port
	HTTPPort int
	// Service name for observability
	ServiceName string

	Database postgres.Config
	Kafka    kafka.Config
	Log      observability.LogConfig
	Tracing  observability.TracingConfig
	// TracingEnabled controls whether the OTLP exporter is started at all.
	TracingEnabled bool
	JWT            JWTConfig
}

// JWTConfig holds token validation settings.
type JWTConfig struct {
	Secret        string
	PublicKeyPath string
	Issuer        string
}

// Validate checks required configuration values.
func (c Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	if c.JWT.Secret == "" && c.JWT.PublicKeyPath == "" {
		return fmt.Errorf("JWT_SECRET or JWT_PUBLIC_KEY_PATH is required")
	}
	return nil
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 8086),
		HTTPPort:    getEnvInt("HTTP_PORT", 9086),
		ServiceName: getEnv("SERVICE_NAME", "ledger-service"),
		Database: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "academix"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "academix_ledger"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
		},
		Kafka: kafka.Config{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tracing: observability.TracingConfig{
			ServiceName: getEnv("SERVICE_NAME", "ledger-service"),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			PublicKeyPath: getEnv("JWT_PUBLIC_KEY_PATH", ""),
			Issuer:        getEnv("JWT_ISSUER", "academix"),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
