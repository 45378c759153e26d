package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

// baseValidConfig returns a fully-valid configuration object that callers
// can tweak inside table tests.
func baseValidConfig() Config {
	return Config{
		AppPort:               8080,
		LogLevel:              "info",
		LogFormat:             "json",
		StoreDriver:           StoreMongo,
		MongoURI:              "mongodb://localhost:27017",
		MongoDBName:           "test",
		MongoCollection:       "notes",
		RedisAddr:             "localhost:6379",
		RedisKeyPrefix:        "notes",
		StoreConnectAttempts:  3,
		RequestLoggingEnabled: true,
		RouteMetricsEnabled:   true,
		CORSAllowOrigins:      "*",
		ShutdownTimeoutSec:    25,
	}
}

// clearConfigEnvVars removes every environment variable that the Config loader
// consumes so each test starts with a clean slate.
func clearConfigEnvVars(t *testing.T) {
	t.Helper()

	for _, k := range []string{
		"APP_PORT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"STORE_DRIVER",
		"MONGO_URI",
		"MONGO_DB_NAME",
		"MONGO_COLLECTION",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"REDIS_KEY_PREFIX",
		"STORE_CONNECT_ATTEMPTS",
		"REQUEST_LOGGING_ENABLED",
		"ROUTE_METRICS_ENABLED",
		"RATE_LIMIT_PER_MIN",
		"CORS_ALLOW_ORIGINS",
		"SHUTDOWN_TIMEOUT_SEC",
		"PYROSCOPE_SERVER_ADDRESS",
	} {
		if err := os.Unsetenv(k); err != nil {
			t.Logf("warning: failed to unset %s: %v", k, err)
		}
	}
}

func TestConfigLoadDefaults(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
	assert.Equal(t, "notes", cfg.MongoDBName)
	assert.Equal(t, "notes", cfg.MongoCollection)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 5, cfg.StoreConnectAttempts)
	assert.True(t, cfg.RequestLoggingEnabled)
	assert.True(t, cfg.RouteMetricsEnabled)
	assert.Equal(t, 0, cfg.RateLimitPerMin)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, 25, cfg.ShutdownTimeoutSec)
	assert.Empty(t, cfg.PyroscopeAddr)
}

func TestConfigLoadWithOverride(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("APP_PORT", "9999")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_FORMAT", "pretty")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.AppPort)
	assert.Equal(t, StoreRedis, cfg.StoreDriver)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigCaching(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	cfg1, err := Load()
	require.NoError(t, err)

	// second call should hit the cache even after the environment changed
	t.Setenv("APP_PORT", "7777")
	cfg2, err := Load()
	require.NoError(t, err)

	assert.Equal(t, cfg1, cfg2)
}

func TestConfigLoadRejectsInvalidEnv(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	assert.ErrorIs(t, err, ErrStoreDriverInvalid)
}

func TestConfigRequestLoggingDisabled(t *testing.T) {
	clearConfigEnvVars(t)
	ResetCache()
	t.Cleanup(ResetCache)

	t.Setenv("REQUEST_LOGGING_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.RequestLoggingEnabled)
}

// -----------------------------------------------------------------------------
// Validate() unit tests (table-driven)
// -----------------------------------------------------------------------------

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "valid config",
			modify: func(*Config) {},
		},
		{
			name:    "invalid port - zero",
			modify:  func(c *Config) { c.AppPort = 0 },
			wantErr: ErrAppPortRange,
		},
		{
			name:    "invalid port - too high",
			modify:  func(c *Config) { c.AppPort = 70000 },
			wantErr: ErrAppPortRange,
		},
		{
			name:    "empty log level",
			modify:  func(c *Config) { c.LogLevel = "" },
			wantErr: ErrLogLevelEmpty,
		},
		{
			name:    "unknown log format",
			modify:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: ErrLogFormatInvalid,
		},
		{
			name:    "unknown store driver",
			modify:  func(c *Config) { c.StoreDriver = "sqlite" },
			wantErr: ErrStoreDriverInvalid,
		},
		{
			name:    "mongo driver without uri",
			modify:  func(c *Config) { c.MongoURI = "" },
			wantErr: ErrMongoURIEmpty,
		},
		{
			name:    "mongo driver without db name",
			modify:  func(c *Config) { c.MongoDBName = "" },
			wantErr: ErrMongoDBNameEmpty,
		},
		{
			name:    "mongo driver without collection",
			modify:  func(c *Config) { c.MongoCollection = "" },
			wantErr: ErrMongoCollectionEmpty,
		},
		{
			name: "redis driver ignores mongo settings",
			modify: func(c *Config) {
				c.StoreDriver = StoreRedis
				c.MongoURI = ""
			},
		},
		{
			name: "redis driver without addr",
			modify: func(c *Config) {
				c.StoreDriver = StoreRedis
				c.RedisAddr = ""
			},
			wantErr: ErrRedisAddrEmpty,
		},
		{
			name: "redis driver with negative db",
			modify: func(c *Config) {
				c.StoreDriver = StoreRedis
				c.RedisDB = -1
			},
			wantErr: ErrRedisDBRange,
		},
		{
			name: "redis driver without key prefix",
			modify: func(c *Config) {
				c.StoreDriver = StoreRedis
				c.RedisKeyPrefix = ""
			},
			wantErr: ErrRedisKeyPrefixEmpty,
		},
		{
			name: "memory driver needs nothing else",
			modify: func(c *Config) {
				c.StoreDriver = StoreMemory
				c.MongoURI = ""
				c.RedisAddr = ""
			},
		},
		{
			name:    "zero connect attempts",
			modify:  func(c *Config) { c.StoreConnectAttempts = 0 },
			wantErr: ErrConnectAttemptsRange,
		},
		{
			name:    "negative rate limit",
			modify:  func(c *Config) { c.RateLimitPerMin = -1 },
			wantErr: ErrRateLimitNegative,
		},
		{
			name:    "zero shutdown timeout",
			modify:  func(c *Config) { c.ShutdownTimeoutSec = 0 },
			wantErr: ErrShutdownTimeoutRange,
		},
		{
			name:    "empty cors origins",
			modify:  func(c *Config) { c.CORSAllowOrigins = "" },
			wantErr: ErrCORSAllowOriginsEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseValidConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
