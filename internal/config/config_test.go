package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vocab/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.False(t, cfg.HTTP.EnablePprof)
	require.Equal(t, []string{"*"}, cfg.HTTP.CorsAllowedOrigins)
	require.Equal(t, config.DriverPostgres, cfg.Database.Driver)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "https://translate.googleapis.com", cfg.Translator.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Translator.Timeout)
	require.Equal(t, uint32(19456), cfg.Password.Memory)
	require.Equal(t, uint32(2), cfg.Password.Iterations)
	require.Equal(t, uint8(1), cfg.Password.Parallelism)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: development
logLevel: debug
http:
  addr: ":9090"
  enablePprof: true
  corsAllowedOrigins: ["https://app.example"]
database:
  driver: sqlite
  sqlitePath: /tmp/vocab.db
translator:
  timeout: 3s
password:
  memory: 1024
`))
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.True(t, cfg.HTTP.EnablePprof)
	require.Equal(t, []string{"https://app.example"}, cfg.HTTP.CorsAllowedOrigins)
	require.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "/tmp/vocab.db", cfg.Database.SQLitePath)
	require.Equal(t, 3*time.Second, cfg.Translator.Timeout)
	require.Equal(t, uint32(1024), cfg.Password.Memory)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := config.Load(writeConfig(t, "http:\n  addr: \":9090\"\n"))
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, config.DriverSQLite, cfg.Database.Driver)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	_, err := config.Load(writeConfig(t, "database:\n  driver: mysql\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
