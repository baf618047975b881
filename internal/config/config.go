package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Storefront configures the storefront service.
type Storefront struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Marketplace MarketplaceAPI `validate:"required"`

	Checkout Checkout
	Session  Session
	Catalog  Catalog
}

// Marketplace configures the marketplace service.
type Marketplace struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Checkout Checkout
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// MarketplaceAPI locates the marketplace from the storefront.
type MarketplaceAPI struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`

	RetryAttempts int           `validate:"gte=1"`
	RetryDelay    time.Duration `validate:"gte=0"`
}

type Checkout struct {
	MinOrderTotal decimal.Decimal
}

type Session struct {
	TTL      time.Duration `validate:"gt=0"`
	Capacity int           `validate:"gte=1"`
}

type Catalog struct {
	TTL time.Duration `validate:"gt=0"`
}

var errMinOrderTotal = errors.New("minimum order total must be positive")

func NewStorefront() Storefront {
	return Storefront{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "storefront"),
			Topic:   env("KAFKA_TOPIC", "order-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Marketplace: MarketplaceAPI{
			BaseURL: env("MARKETPLACE_URL", "http://localhost:8081"),
			Timeout: envDuration("MARKETPLACE_TIMEOUT", 5*time.Second),

			RetryAttempts: envInt("MARKETPLACE_RETRY_ATTEMPTS", 3),
			RetryDelay:    envDuration("MARKETPLACE_RETRY_DELAY", 100*time.Millisecond),
		},

		Checkout: Checkout{
			MinOrderTotal: envDecimal("MIN_ORDER_TOTAL", decimal.NewFromInt(50)),
		},

		Session: Session{
			TTL:      envDuration("SESSION_TTL", 30*time.Minute),
			Capacity: envInt("SESSION_CAPACITY", 10000),
		},

		Catalog: Catalog{
			TTL: envDuration("CATALOG_TTL", 30*time.Second),
		},
	}
}

func NewMarketplace() Marketplace {
	return Marketplace{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8081"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "marketplace"),
			Topic:   env("KAFKA_TOPIC", "order-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "techmarket"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Checkout: Checkout{
			MinOrderTotal: envDecimal("MIN_ORDER_TOTAL", decimal.NewFromInt(50)),
		},
	}
}

func (c Storefront) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Checkout.validate()
}

func (c Marketplace) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Checkout.validate()
}

func (c Checkout) validate() error {
	if !c.MinOrderTotal.IsPositive() {
		return errMinOrderTotal
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
