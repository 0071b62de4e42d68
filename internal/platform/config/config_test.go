package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, "quotes-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.HandlerTimeout)
	assert.Equal(t, int64(DefaultMaxRequestSize), cfg.Server.MaxRequestSize)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Log.File.Enabled)
	assert.Equal(t, "./logs/quotes.log", cfg.Log.File.Path)
	assert.Equal(t, DefaultLogFileMaxSizeMB, cfg.Log.File.MaxSizeMB)
	assert.True(t, cfg.Log.File.Compress)

	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "quotes-service", cfg.Telemetry.ServiceName)
	assert.InDelta(t, 1.0, cfg.Telemetry.SamplingRate, 0)

	require.NoError(t, cfg.Validate())
}

func TestLoad_StoreDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, DriverDynamoDB, cfg.Store.Driver)
	assert.Equal(t, "Quotes", cfg.Store.DynamoDB.Table)
	assert.Equal(t, "quote-quoter-index", cfg.Store.DynamoDB.Index)
	assert.Equal(t, "us-east-1", cfg.Store.DynamoDB.Region)
	assert.Empty(t, cfg.Store.DynamoDB.Endpoint)
	assert.False(t, cfg.Store.DynamoDB.CreateTable)
	assert.Equal(t, "quotes.db", cfg.Store.SQLite.Path)
}

func TestLoad_ClientDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 1, cfg.Client.Retry.MaxAttempts, "the quotes client does not retry by default")
	assert.Equal(t, 100*time.Millisecond, cfg.Client.Retry.InitialInterval)
	assert.InDelta(t, DefaultClientRetryMultiplier, cfg.Client.Retry.Multiplier, 0)
	assert.Equal(t, DefaultClientCircuitMaxFailures, cfg.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, DefaultClientCircuitHalfOpenLimit, cfg.Client.CircuitBreaker.HalfOpenLimit)
	assert.Equal(t, DefaultTransportIdleConnTimeout, cfg.Client.Transport.IdleConnTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Services.Quotes.BaseURL)
}

func TestLoad_FileLayers(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", `
app:
  environment: dev
log:
  level: debug
store:
  driver: sqlite
  sqlite:
    path: /var/lib/quotes/base.db
`)
	writeYAML(t, dir, "local.yaml", `
log:
  format: pretty
store:
  sqlite:
    path: /tmp/local.db
`)

	t.Run("base only", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "")
		require.NoError(t, err)

		assert.Equal(t, "dev", cfg.App.Environment)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "/var/lib/quotes/base.db", cfg.Store.SQLite.Path)
	})

	t.Run("profile over base", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "local")
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "pretty", cfg.Log.Format)
		assert.Equal(t, DriverSQLite, cfg.Store.Driver)
		assert.Equal(t, "/tmp/local.db", cfg.Store.SQLite.Path)
	})

	t.Run("missing profile falls back", func(t *testing.T) {
		cfg, err := LoadFrom(dir, "nonexistent")
		require.NoError(t, err)

		assert.Equal(t, "/var/lib/quotes/base.db", cfg.Store.SQLite.Path)
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", "server:\n  port: 7000\n")

	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_SERVER_HANDLER_TIMEOUT", "2s")
	t.Setenv("APP_STORE_DRIVER", "memory")
	t.Setenv("APP_STORE_DYNAMODB_CREATE_TABLE", "true")
	t.Setenv("APP_STORE_DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("APP_SERVICES_QUOTES_BASE_URL", "http://quotes.internal:8080")
	t.Setenv("APP_TELEMETRY_ENABLED", "true")

	cfg, err := LoadFrom(dir, "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Server.HandlerTimeout)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.DynamoDB.CreateTable)
	assert.Equal(t, "http://localhost:8000", cfg.Store.DynamoDB.Endpoint)
	assert.Equal(t, "http://quotes.internal:8080", cfg.Services.Quotes.BaseURL)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "base.yaml", "server: [unclosed\n")

	_, err := LoadFrom(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

func TestEnvKeyMapper(t *testing.T) {
	mapKey := envKeyMapper([]string{"server.max_request_size", "store.dynamodb.access_key_id", "log.level"})

	assert.Equal(t, "server.max_request_size", mapKey("APP_SERVER_MAX_REQUEST_SIZE"))
	assert.Equal(t, "store.dynamodb.access_key_id", mapKey("APP_STORE_DYNAMODB_ACCESS_KEY_ID"))
	assert.Equal(t, "log.level", mapKey("APP_LOG_LEVEL"))
	assert.Equal(t, "unknown.key", mapKey("APP_UNKNOWN_KEY"))
}

func TestDefaultsMap(t *testing.T) {
	d := defaults()

	assert.Equal(t, "quotes-service", d["app.name"])
	assert.Equal(t, DriverDynamoDB, d["store.driver"])
	assert.Equal(t, DefaultClientRetryMaxAttempts, d["client.retry.max_attempts"])
	assert.Equal(t, "10s", d["server.handler_timeout"])
}
