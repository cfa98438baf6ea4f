package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("FORECAST_ORACLE_URL", "http://oracle.local/forecast")
	t.Setenv("FORECAST_API_KEY", "key-123")

	path := writeConfig(t, `
# infrastructure endpoints
database:
  host: "localhost"
  port: 5432
  user: "coffeeos"
  password: "coffeeos"
  database: "coffeeos"

rabbitmq:
  host: "localhost"
  port: 5672
  user: "guest"
  password: "guest"

http:
  port: 3000
  allowed_origins: "http://localhost:5173, http://localhost:3001"

auth:
  token_ttl_minutes: 120
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "coffeeos", cfg.Database.Database)
	require.Equal(t, "guest", cfg.RabbitMQ.User)
	require.Equal(t, 3000, cfg.HTTP.Port)
	require.Equal(t, []string{"http://localhost:5173", "http://localhost:3001"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 120, cfg.Auth.TokenTTL)

	// Secrets come from the environment, never from the file.
	require.Equal(t, "unit-test-secret", cfg.Auth.JWTSecret)
	require.Equal(t, "http://oracle.local/forecast", cfg.Forecast.OracleURL)
	require.Equal(t, "key-123", cfg.Forecast.APIKey)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load(writeConfig(t, "database:\n  host: db\n"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, 480, cfg.Auth.TokenTTL)
	require.Equal(t, 30, cfg.Forecast.TimeoutS)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(writeConfig(t, "http:\n  port: 3000\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
