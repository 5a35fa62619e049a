package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_SQLiteFromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9000"
database:
  driver: sqlite
  sqlite_path: /tmp/trivia-test.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:/tmp/trivia-test.db?_foreign_keys=on", cfg.Database.SQLiteDSN())
	assert.Equal(t, "migrations", cfg.Database.MigrationsPath)

	// Умолчания CORS совпадают с исходным API
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"}, cfg.CORS.AllowMethods)
	assert.Equal(t, []string{"Content-Type", "Authorization"}, cfg.CORS.AllowHeaders)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CategoryTTL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
database:
  driver: postgres
  host: db.local
  user: trivia
  dbname: trivia
`)
	t.Setenv("DATABASE_HOST", "override.local")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDRS", "r1:6379, r2:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "override.local", cfg.Database.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"r1:6379", "r2:6379"}, cfg.Redis.Addrs)
	assert.Contains(t, cfg.Database.PostgresConnectionString(), "host=override.local")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "./data/trivia.db", cfg.Database.SQLitePath)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Database: DatabaseConfig{Driver: DriverSQLite, SQLitePath: "x.db"}}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"валидная конфигурация", func(c *Config) {}, ""},
		{"неизвестный драйвер", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported database driver"},
		{"неполный postgres", func(c *Config) { c.Database.Driver = DriverPostgres }, "incomplete"},
		{"redis без адреса", func(c *Config) { c.Redis.Enabled = true }, "no address"},
		{"rate limit без redis", func(c *Config) {
			c.RateLimit = RateLimitConfig{Enabled: true, MaxRequests: 5, Window: time.Second}
		}, "requires redis"},
		{"rate limit с нулевым окном", func(c *Config) {
			c.Redis = RedisConfig{Enabled: true, Addr: "localhost:6379"}
			c.RateLimit = RateLimitConfig{Enabled: true, MaxRequests: 5}
		}, "positive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
