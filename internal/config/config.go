package config

import (
	"errors"
	"sync"

	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMongo  = "mongo"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

var (
	ErrAppPortRange          = errors.New("APP_PORT must be between 1 and 65535")
	ErrLogLevelEmpty         = errors.New("LOG_LEVEL cannot be empty")
	ErrLogFormatInvalid      = errors.New("LOG_FORMAT must be one of json, text, pretty")
	ErrStoreDriverInvalid    = errors.New("STORE_DRIVER must be one of mongo, redis, memory")
	ErrMongoURIEmpty         = errors.New("MONGO_URI cannot be empty")
	ErrMongoDBNameEmpty      = errors.New("MONGO_DB_NAME cannot be empty")
	ErrMongoCollectionEmpty  = errors.New("MONGO_COLLECTION cannot be empty")
	ErrRedisAddrEmpty        = errors.New("REDIS_ADDR cannot be empty")
	ErrRedisDBRange          = errors.New("REDIS_DB must be greater than or equal to 0")
	ErrRedisKeyPrefixEmpty   = errors.New("REDIS_KEY_PREFIX cannot be empty")
	ErrConnectAttemptsRange  = errors.New("STORE_CONNECT_ATTEMPTS must be greater than or equal to 1")
	ErrRateLimitNegative     = errors.New("RATE_LIMIT_PER_MIN must be greater than or equal to 0")
	ErrShutdownTimeoutRange  = errors.New("SHUTDOWN_TIMEOUT_SEC must be greater than 0")
	ErrCORSAllowOriginsEmpty = errors.New("CORS_ALLOW_ORIGINS cannot be empty")
)

// Config holds all application configuration
type Config struct {
	AppPort               int    `mapstructure:"APP_PORT"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogFormat             string `mapstructure:"LOG_FORMAT"`
	StoreDriver           string `mapstructure:"STORE_DRIVER"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	MongoDBName           string `mapstructure:"MONGO_DB_NAME"`
	MongoCollection       string `mapstructure:"MONGO_COLLECTION"`
	RedisAddr             string `mapstructure:"REDIS_ADDR"`
	RedisPassword         string `mapstructure:"REDIS_PASSWORD"`
	RedisDB               int    `mapstructure:"REDIS_DB"`
	RedisKeyPrefix        string `mapstructure:"REDIS_KEY_PREFIX"`
	StoreConnectAttempts  int    `mapstructure:"STORE_CONNECT_ATTEMPTS"`
	RequestLoggingEnabled bool   `mapstructure:"REQUEST_LOGGING_ENABLED"`
	RouteMetricsEnabled   bool   `mapstructure:"ROUTE_METRICS_ENABLED"`
	RateLimitPerMin       int    `mapstructure:"RATE_LIMIT_PER_MIN"`
	CORSAllowOrigins      string `mapstructure:"CORS_ALLOW_ORIGINS"`
	ShutdownTimeoutSec    int    `mapstructure:"SHUTDOWN_TIMEOUT_SEC"`
	PyroscopeAddr         string `mapstructure:"PYROSCOPE_SERVER_ADDRESS"`
}

var (
	cachedConfig *Config
	configMutex  sync.RWMutex
)

// Load loads configuration from environment variables and .env file
// It caches the result for subsequent calls
func Load() (Config, error) {
	configMutex.RLock()
	if cachedConfig != nil {
		defer configMutex.RUnlock()
		return *cachedConfig, nil
	}
	configMutex.RUnlock()

	configMutex.Lock()
	defer configMutex.Unlock()

	// Double-check in case another goroutine loaded it while we waited for the lock
	if cachedConfig != nil {
		return *cachedConfig, nil
	}

	v := viper.New()

	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGO_URI", "mongodb://mongo:27017")
	v.SetDefault("MONGO_DB_NAME", "notes")
	v.SetDefault("MONGO_COLLECTION", "notes")
	v.SetDefault("REDIS_ADDR", "redis:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "notes")
	v.SetDefault("STORE_CONNECT_ATTEMPTS", 5)
	v.SetDefault("REQUEST_LOGGING_ENABLED", true)
	v.SetDefault("ROUTE_METRICS_ENABLED", true)
	v.SetDefault("RATE_LIMIT_PER_MIN", 0) // disabled
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT_SEC", 25)
	v.SetDefault("PYROSCOPE_SERVER_ADDRESS", "")

	// Configure Viper to read from .env file (if present)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Try to read .env file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	// Override with OS environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	cachedConfig = &cfg

	return cfg, nil
}

// ResetCache clears the cached configuration (for testing purposes)
func ResetCache() {
	configMutex.Lock()
	defer configMutex.Unlock()
	cachedConfig = nil
}

// Validate checks if required configuration fields are properly set.
// Store-specific settings are only checked for the selected driver.
func (c Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return ErrAppPortRange
	}
	if c.LogLevel == "" {
		return ErrLogLevelEmpty
	}
	switch c.LogFormat {
	case "json", "text", "pretty":
	default:
		return ErrLogFormatInvalid
	}
	if c.StoreConnectAttempts < 1 {
		return ErrConnectAttemptsRange
	}
	if c.RateLimitPerMin < 0 {
		return ErrRateLimitNegative
	}
	if c.ShutdownTimeoutSec <= 0 {
		return ErrShutdownTimeoutRange
	}
	if c.CORSAllowOrigins == "" {
		return ErrCORSAllowOriginsEmpty
	}

	switch c.StoreDriver {
	case StoreMongo:
		if c.MongoURI == "" {
			return ErrMongoURIEmpty
		}
		if c.MongoDBName == "" {
			return ErrMongoDBNameEmpty
		}
		if c.MongoCollection == "" {
			return ErrMongoCollectionEmpty
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return ErrRedisAddrEmpty
		}
		if c.RedisDB < 0 {
			return ErrRedisDBRange
		}
		if c.RedisKeyPrefix == "" {
			return ErrRedisKeyPrefixEmpty
		}
	case StoreMemory:
	default:
		return ErrStoreDriverInvalid
	}
	return nil
}
