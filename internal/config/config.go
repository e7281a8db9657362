package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	StoreBackendDynamoDB = "dynamodb"
	StoreBackendMemory   = "memory"
)

type Config struct {
	App      AppConfig
	DynamoDB DynamoDBConfig
	Redis    RedisConfig
	Payments PaymentsConfig
	Auth     AuthConfig
	Kiosk    KioskConfig
}

// Load reads the configuration from the environment. The unprefixed legacy
// variables (AWS_REGION, DYNAMODB_ENDPOINT, PAYMENT_GATEWAY_MOCK, ...) are
// honoured when the KIOSK_* equivalent is unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyLegacyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"KIOSK_APP_ENV" default:"dev"`
	Port         string `envconfig:"KIOSK_APP_PORT" default:"8080"`
	ServiceName  string `envconfig:"KIOSK_SERVICE_NAME" default:"kiosk-quote"`
	LogLevel     string `envconfig:"KIOSK_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"KIOSK_LOG_FORMAT" default:"json"`
	StoreBackend string `envconfig:"KIOSK_STORE_BACKEND" default:"dynamodb"`

	ShutdownTimeout time.Duration `envconfig:"KIOSK_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DynamoDBConfig struct {
	Region          string `envconfig:"KIOSK_DYNAMODB_REGION"`
	Endpoint        string `envconfig:"KIOSK_DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"KIOSK_DYNAMODB_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"KIOSK_DYNAMODB_SECRET_ACCESS_KEY"`
	QuoteTable      string `envconfig:"KIOSK_QUOTE_DRAFTS_TABLE" default:"quote_drafts"`
}

type RedisConfig struct {
	Enabled      bool          `envconfig:"KIOSK_REDIS_ENABLED" default:"false"`
	URL          string        `envconfig:"KIOSK_REDIS_URL"`
	Address      string        `envconfig:"KIOSK_REDIS_ADDR" default:"localhost:6379"`
	Password     string        `envconfig:"KIOSK_REDIS_PASSWORD"`
	DB           int           `envconfig:"KIOSK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"KIOSK_REDIS_POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"KIOSK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"KIOSK_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"KIOSK_REDIS_WRITE_TIMEOUT" default:"3s"`
	LockTTL      time.Duration `envconfig:"KIOSK_FINALIZE_LOCK_TTL" default:"30s"`
}

type PaymentsConfig struct {
	Mock               bool   `envconfig:"KIOSK_PAYMENT_MOCK" default:"true"`
	MercadoPagoToken   string `envconfig:"KIOSK_MERCADOPAGO_ACCESS_TOKEN"`
	PaymentMethodID    string `envconfig:"KIOSK_PAYMENT_METHOD_ID" default:"pix"`
	FallbackPayerEmail string `envconfig:"KIOSK_PAYMENT_PAYER_EMAIL"`
	DepositDescription string `envconfig:"KIOSK_DEPOSIT_DESCRIPTION" default:"Kitchen remodel design deposit"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"KIOSK_JWT_SECRET"`
	JWTIssuer string `envconfig:"KIOSK_JWT_ISSUER"`
}

type KioskConfig struct {
	AppointmentSlots []string      `envconfig:"KIOSK_APPOINTMENT_SLOTS"`
	SessionTTL       time.Duration `envconfig:"KIOSK_SESSION_TTL" default:"2h"`
	CompanyName      string        `envconfig:"KIOSK_COMPANY_NAME" default:"Kitchen Remodel Studio"`
}

func (c *Config) applyLegacyEnv() {
	if c.DynamoDB.Region == "" {
		c.DynamoDB.Region = getenvDefault("AWS_REGION", "us-east-1")
	}
	if c.DynamoDB.Endpoint == "" {
		c.DynamoDB.Endpoint = os.Getenv("DYNAMODB_ENDPOINT")
	}
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if c.DynamoDB.AccessKeyID == "" {
		c.DynamoDB.AccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", "local")
	}
	if c.DynamoDB.SecretAccessKey == "" {
		c.DynamoDB.SecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", "local")
	}
	if c.Payments.MercadoPagoToken == "" {
		c.Payments.MercadoPagoToken = os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	}
	if isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")) {
		c.Payments.Mock = true
	}
}

func (c *Config) validate() error {
	switch strings.ToLower(c.App.StoreBackend) {
	case StoreBackendDynamoDB, StoreBackendMemory:
	default:
		return fmt.Errorf("invalid store backend %q", c.App.StoreBackend)
	}
	if !c.Payments.Mock && c.Payments.MercadoPagoToken == "" {
		return fmt.Errorf("payment mock disabled but no mercado pago access token configured")
	}
	if c.Redis.LockTTL <= 0 {
		return fmt.Errorf("finalize lock ttl must be positive")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
