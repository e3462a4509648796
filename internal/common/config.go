package common

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "RECEIPTS_CONFIG"

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Notify   NotifyConfig   `yaml:"notify"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Parse    ParseConfig    `yaml:"parse"`
	Queue    QueueConfig    `yaml:"queue"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver           string        `yaml:"driver"` // "postgres" or "sqlite"
	DSN              string        `yaml:"dsn"`
	MaxConns         int32         `yaml:"maxConns"`
	MinConns         int32         `yaml:"minConns"`
	MaxConnLifetime  time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime  time.Duration `yaml:"maxConnIdleTime"`
	DialTimeout      time.Duration `yaml:"dialTimeout"`
	StatementTimeout time.Duration `yaml:"statementTimeout"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string `yaml:"grpcAddr"`
	HTTPAddr string `yaml:"httpAddr"`
}

// NotifyConfig holds inbound-notification configuration
type NotifyConfig struct {
	// VerificationToken must match the token carried by inbound
	// notifications; requests with any other token are rejected.
	VerificationToken string `yaml:"verificationToken"`
}

// FetchConfig bounds object fetches
type FetchConfig struct {
	Timeout     time.Duration `yaml:"timeout"`     // per attempt
	MaxAttempts int           `yaml:"maxAttempts"` // transient failures only
	BackoffBase time.Duration `yaml:"backoffBase"` // doubles per attempt
}

// ParseConfig bounds parser invocations
type ParseConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// QueueConfig sizes the processing worker pool
type QueueConfig struct {
	Workers        int           `yaml:"workers"`
	Size           int           `yaml:"size"`
	ProcessTimeout time.Duration `yaml:"processTimeout"`
}

// LoadConfig loads configuration from an optional YAML file pointed at by
// RECEIPTS_CONFIG, then applies environment variable overrides on top.
func LoadConfig() *Config {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:           "postgres",
			MaxConns:         20,
			MinConns:         5,
			MaxConnLifetime:  30 * time.Minute,
			MaxConnIdleTime:  5 * time.Minute,
			DialTimeout:      3 * time.Second,
			StatementTimeout: 0,
		},
		Server: ServerConfig{
			GRPCAddr: ":8080",
			HTTPAddr: ":8081",
		},
		Fetch: FetchConfig{
			Timeout:     10 * time.Second,
			MaxAttempts: 3,
			BackoffBase: 500 * time.Millisecond,
		},
		Parse: ParseConfig{
			Timeout: 30 * time.Second,
		},
		Queue: QueueConfig{
			Workers:        4,
			Size:           256,
			ProcessTimeout: 3 * time.Minute,
		},
	}

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			// Parse errors fall through to env/defaults.
			_ = yaml.Unmarshal(raw, cfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DB_URL", c.Database.DSN)
	c.Database.MaxConns = getEnvAsInt32("DB_MAX_CONNS", c.Database.MaxConns)
	c.Database.MinConns = getEnvAsInt32("DB_MIN_CONNS", c.Database.MinConns)
	c.Database.MaxConnLifetime = getEnvAsDuration("DB_MAX_CONN_LIFETIME", c.Database.MaxConnLifetime)
	c.Database.MaxConnIdleTime = getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", c.Database.MaxConnIdleTime)
	c.Database.DialTimeout = getEnvAsDuration("DB_DIAL_TIMEOUT", c.Database.DialTimeout)
	c.Database.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", c.Database.StatementTimeout)

	c.Server.GRPCAddr = getEnv("GRPC_ADDR", c.Server.GRPCAddr)
	c.Server.HTTPAddr = getEnv("HTTP_ADDR", c.Server.HTTPAddr)

	c.Notify.VerificationToken = getEnv("NOTIFICATION_TOKEN", c.Notify.VerificationToken)

	c.Fetch.Timeout = getEnvAsDuration("FETCH_TIMEOUT", c.Fetch.Timeout)
	c.Fetch.MaxAttempts = getEnvAsInt("FETCH_MAX_ATTEMPTS", c.Fetch.MaxAttempts)
	c.Fetch.BackoffBase = getEnvAsDuration("FETCH_BACKOFF_BASE", c.Fetch.BackoffBase)

	c.Parse.Timeout = getEnvAsDuration("PARSE_TIMEOUT", c.Parse.Timeout)

	c.Queue.Workers = getEnvAsInt("QUEUE_WORKERS", c.Queue.Workers)
	c.Queue.Size = getEnvAsInt("QUEUE_SIZE", c.Queue.Size)
	c.Queue.ProcessTimeout = getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", c.Queue.ProcessTimeout)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Notify.VerificationToken == "" {
		return NewAppError("CONFIG_ERROR", "NOTIFICATION_TOKEN is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" || c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR and HTTP_ADDR are required", ErrInvalidInput)
	}
	if c.Fetch.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "FETCH_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
