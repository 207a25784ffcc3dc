package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
environment = "local"

[server]
http_port = 9090

[logs]
level = "debug"

[market_api]
local_url = "http://localhost:3000/"
production_url = "https://api.smc-coches.es"
timeout = 10

[session]
backend = "cookie"
secret = "0123456789abcdef0123456789abcdef"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "defaults are kept")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL())
	assert.Equal(t, SessionBackendCookie, cfg.Session.Backend)
}

func TestLoad_ProductionFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "https://api.smc-coches.es", cfg.APIBaseURL())
}

func TestLoad_EnvOverridesURLOfActiveEnvironment(t *testing.T) {
	t.Setenv("MARKET_API_URL", "http://api.internal:3000")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:3000", cfg.APIBaseURL())
	assert.Equal(t, "https://api.smc-coches.es", cfg.MarketAPI.ProductionURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown environment", func(c *Config) { c.Environment = "staging" }},
		{"short secret", func(c *Config) { c.Session.Secret = "short" }},
		{"unknown backend", func(c *Config) { c.Session.Backend = "redis" }},
		{"bad encryption key", func(c *Config) { c.Session.EncryptionKey = "123" }},
		{"csrf without key", func(c *Config) { c.CSRF.Enabled = true }},
		{"memory in production", func(c *Config) {
			c.Environment = EnvProduction
			c.MarketAPI.ProductionURL = "https://api"
			c.Session.Backend = SessionBackendMemory
		}},
		{"empty api url", func(c *Config) { c.MarketAPI.LocalURL = "" }},
		{"postgres without cleanup", func(c *Config) {
			c.Session.Backend = SessionBackendPostgres
			c.Session.CleanupInterval = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "smc", Password: "pw", DBName: "web", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=smc password=pw dbname=web sslmode=disable", d.DSN())
}
