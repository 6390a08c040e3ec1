package config

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"

	LockLocal = "local"
	LockRedis = "redis"
)

// Config holds runtime configuration for the service.
type Config struct {
	AppEnv  string `envconfig:"APP_ENV" default:"development"`
	AppAddr string `envconfig:"APP_ADDR" default:":8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`

	StorageDriver    string `envconfig:"STORAGE_DRIVER" default:"memory"`
	EstimatesTable   string `envconfig:"ESTIMATES_TABLE" default:"estimates"`
	PaymentsTable    string `envconfig:"PAYMENTS_TABLE" default:"payments"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKey     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretKey     string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint string `envconfig:"DYNAMODB_ENDPOINT"`

	LockDriver string        `envconfig:"LOCK_DRIVER" default:"local"`
	RedisAddr  string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	LockTTL    time.Duration `envconfig:"LOCK_TTL" default:"10s"`
	LockWait   time.Duration `envconfig:"LOCK_WAIT" default:"5s"`

	DefaultTaxRate      float64 `envconfig:"DEFAULT_TAX_RATE" default:"0"`
	DefaultTerms        string  `envconfig:"DEFAULT_TERMS"`
	DefaultValidityDays int     `envconfig:"DEFAULT_VALIDITY_DAYS" default:"30"`
	CompanyName         string  `envconfig:"COMPANY_NAME" default:"Estimate Engine"`
	CurrencySymbol      string  `envconfig:"CURRENCY_SYMBOL" default:"$"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageDynamoDB:
	default:
		return errors.New("STORAGE_DRIVER must be memory or dynamodb")
	}
	switch c.LockDriver {
	case LockLocal, LockRedis:
	default:
		return errors.New("LOCK_DRIVER must be local or redis")
	}
	if c.DefaultTaxRate < 0 || c.DefaultTaxRate > 100 {
		return errors.New("DEFAULT_TAX_RATE must be between 0 and 100")
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
	return nil
}

// IsProduction returns true when the service runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
