package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Secrets  SecretsConfig  `mapstructure:"secrets"`
	Log      LogConfig      `mapstructure:"log"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// PoolSize caps connections; 0 derives it from webhook.concurrency.
	PoolSize int `mapstructure:"pool_size"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig selects the relational store backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type SecretsConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for XChaCha20-Poly1305
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// WebhookConfig tunes dispatch, delivery and the retry/circuit-breaker policy.
type WebhookConfig struct {
	Concurrency          int           `mapstructure:"concurrency"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	LockTTL              time.Duration `mapstructure:"lock_ttl"`
	LockRetryDelay       time.Duration `mapstructure:"lock_retry_delay"`
	MaxAttempts          int           `mapstructure:"max_attempts"`
	AutoDisableThreshold int           `mapstructure:"auto_disable_threshold"`
	BackoffBase          time.Duration `mapstructure:"backoff_base"`
	ResponseCaptureLimit int           `mapstructure:"response_capture_limit"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
	LeaseDuration        time.Duration `mapstructure:"lease_duration"`
	QueueName            string        `mapstructure:"queue_name"`
	UserAgent            string        `mapstructure:"user_agent"`
}

// DefaultWebhookConfig returns the delivery policy used when nothing is configured.
func DefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		Concurrency:          25,
		RequestTimeout:       10 * time.Second,
		LockTTL:              15 * time.Second,
		LockRetryDelay:       5 * time.Second,
		MaxAttempts:          6,
		AutoDisableThreshold: 30,
		BackoffBase:          5 * time.Second,
		ResponseCaptureLimit: 4096,
		PollInterval:         250 * time.Millisecond,
		LeaseDuration:        30 * time.Second,
		QueueName:            "webhook-delivery",
		UserAgent:            "UseSend-Webhooks/1.0",
	}
}

// Validate checks invariants between delivery settings.
func (w WebhookConfig) Validate() error {
	if w.Concurrency < 1 {
		return fmt.Errorf("webhook.concurrency must be positive, got %d", w.Concurrency)
	}
	if w.MaxAttempts < 1 {
		return fmt.Errorf("webhook.max_attempts must be positive, got %d", w.MaxAttempts)
	}
	if w.AutoDisableThreshold < 1 {
		return fmt.Errorf("webhook.auto_disable_threshold must be positive, got %d", w.AutoDisableThreshold)
	}
	// A crashed worker's lock must outlive its HTTP attempt.
	if w.LockTTL <= w.RequestTimeout {
		return fmt.Errorf("webhook.lock_ttl (%s) must exceed webhook.request_timeout (%s)", w.LockTTL, w.RequestTimeout)
	}
	if w.LeaseDuration <= w.LockTTL {
		return fmt.Errorf("webhook.lease_duration (%s) must exceed webhook.lock_ttl (%s)", w.LeaseDuration, w.LockTTL)
	}
	if w.ResponseCaptureLimit < 1 {
		return fmt.Errorf("webhook.response_capture_limit must be positive, got %d", w.ResponseCaptureLimit)
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WHD_ (WebHook Dispatcher).
// Nested keys use underscore: WHD_DATABASE_HOST, WHD_WEBHOOK_CONCURRENCY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	wh := DefaultWebhookConfig()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "webhooks")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 30)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 0)
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "webhook-dispatcher")
	v.SetDefault("secrets.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("webhook.concurrency", wh.Concurrency)
	v.SetDefault("webhook.request_timeout", wh.RequestTimeout.String())
	v.SetDefault("webhook.lock_ttl", wh.LockTTL.String())
	v.SetDefault("webhook.lock_retry_delay", wh.LockRetryDelay.String())
	v.SetDefault("webhook.max_attempts", wh.MaxAttempts)
	v.SetDefault("webhook.auto_disable_threshold", wh.AutoDisableThreshold)
	v.SetDefault("webhook.backoff_base", wh.BackoffBase.String())
	v.SetDefault("webhook.response_capture_limit", wh.ResponseCaptureLimit)
	v.SetDefault("webhook.poll_interval", wh.PollInterval.String())
	v.SetDefault("webhook.lease_duration", wh.LeaseDuration.String())
	v.SetDefault("webhook.queue_name", wh.QueueName)
	v.SetDefault("webhook.user_agent", wh.UserAgent)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WHD_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WHD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Webhook.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
