package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory = "memory"
	StorageDynamo = "dynamo"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort     string
	AppEnv      string
	APIBasePath string
	LogLevel    string

	StorageDriver  string
	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	SNSTopicARN      string // empty disables post-created events
	JWTPublicKeyPath string // empty leaves write endpoints open
	JWTRequiredRole  string // empty accepts any verified token

	RateLimitRPS    float64
	RateLimitBurst  int
	AllowedOrigins  []string // CORS allowed origins
	ShutdownTimeout time.Duration
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Posts      string
	PostTitles string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	env := getEnv("APP_ENV", "development")
	defaultLevel := "info"
	if env == "development" {
		defaultLevel = "debug"
	}
	return &Config{
		AppPort:     getEnv("APP_PORT", "3000"),
		AppEnv:      env,
		APIBasePath: getEnv("API_BASE_PATH", "/api"),
		LogLevel:    getEnv("LOG_LEVEL", defaultLevel),

		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Posts:      getEnv("DYNAMO_TABLE_POSTS", "posts"),
			PostTitles: getEnv("DYNAMO_TABLE_POST_TITLES", "post_titles"),
		},

		SNSTopicARN:      getEnv("SNS_TOPIC_ARN", ""),
		JWTPublicKeyPath: getEnv("JWT_PUBLIC_KEY_PATH", ""),
		JWTRequiredRole:  getEnv("JWT_REQUIRED_ROLE", ""),

		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 10),
		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Validate reports configuration values the process cannot start with.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageDynamo:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if !strings.HasPrefix(c.APIBasePath, "/") {
		return fmt.Errorf("api base path %q must start with '/'", c.APIBasePath)
	}
	if c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool { return c.AppEnv == "development" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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
