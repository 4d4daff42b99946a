package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agrocredito/agrocredito/pkg/postgres"
)

type KafkaConfig struct {
	Brokers []string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	QuoteTTL time.Duration
}

type JWTConfig struct {
	Secret        string
	PublicKeyFile string
	Issuer        string
	Expiration    time.Duration
}

type TLSConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type TracingConfig struct {
	Endpoint string
	Insecure bool
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          postgres.Config
	Kafka       KafkaConfig
	Redis       RedisConfig
	JWT         JWTConfig
	TLS         TLSConfig
	Tracing     TracingConfig
	LogLevel    string
	LogFormat   string
	ServiceName string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWT.Secret == "" && c.JWT.PublicKeyFile == "" {
		panic("JWT_SECRET or JWT_PUBLIC_KEY_FILE environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9095),
		HTTPPort: getEnvInt("HTTP_PORT", 8095),
		DB: postgres.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "agrocredito"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "agrocredito"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 0)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 0)),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			QuoteTTL: getEnvDuration("REDIS_QUOTE_TTL", 15*time.Minute),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:        getEnv("JWT_ISSUER", "agrocredito"),
			Expiration:    getEnvDuration("JWT_EXPIRATION", 24*time.Hour),
		},
		TLS: TLSConfig{
			Enabled:  getEnvBool("TLS_ENABLED", false),
			CertFile: getEnv("TLS_CERT_FILE", ""),
			KeyFile:  getEnv("TLS_KEY_FILE", ""),
		},
		Tracing: TracingConfig{
			Endpoint: getEnv("OTLP_ENDPOINT", ""),
			Insecure: getEnvBool("OTLP_INSECURE", true),
		},
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ServiceName: "agrocredito",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
