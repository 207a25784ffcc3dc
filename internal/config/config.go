package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Окружения, от которых зависит адрес REST API
const (
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Варианты хранилища сессии
const (
	SessionBackendCookie   = "cookie"
	SessionBackendPostgres = "postgres"
	SessionBackendMemory   = "memory"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация приложения
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Logs        LogsConfig      `toml:"logs"`
	Metrics     MetricsConfig   `toml:"metrics"`
	MarketAPI   MarketAPIConfig `toml:"market_api"`
	Session     SessionConfig   `toml:"session"`
	CSRF        CSRFConfig      `toml:"csrf"`
	CORS        CORSConfig      `toml:"cors"`
	Database    DatabaseConfig  `toml:"database"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File   string       `toml:"file"`
	Level  string       `toml:"level"`
	Fluent FluentConfig `toml:"fluent"`
}

// FluentConfig параметры отправки логов в Fluent Bit
type FluentConfig struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// MarketAPIConfig адреса REST API маркетплейса по окружениям
type MarketAPIConfig struct {
	LocalURL      string `toml:"local_url"`
	ProductionURL string `toml:"production_url"`
	Timeout       int    `toml:"timeout"` // секунды, 0 = без таймаута
}

// SessionConfig параметры хранения сессии
type SessionConfig struct {
	Backend         string `toml:"backend"`
	CookieName      string `toml:"cookie_name"`
	Secret          string `toml:"secret"`
	EncryptionKey   string `toml:"encryption_key"`
	MaxAge          int    `toml:"max_age"`
	Secure          bool   `toml:"secure"`
	Revalidate      bool   `toml:"revalidate"`
	IdleTTL         int    `toml:"idle_ttl"`         // секунды, только для postgres
	CleanupInterval int    `toml:"cleanup_interval"` // секунды, только для postgres
}

// CSRFConfig параметры защиты форм
type CSRFConfig struct {
	Enabled        bool     `toml:"enabled"`
	AuthKey        string   `toml:"auth_key"`
	Secure         bool     `toml:"secure"`
	TrustedOrigins []string `toml:"trusted_origins"`
}

// CORSConfig параметры CORS для JSON эндпоинтов
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DatabaseConfig параметры PostgreSQL (используется только хранилищем сессий postgres)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает конфигурацию из toml файла.
// Перед этим подхватывается .env (если есть), переменные окружения перекрывают файл.
func Load(path string) (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Environment: EnvLocal,
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level:  "info",
			Fluent: FluentConfig{Port: 24224},
		},
		Metrics: MetricsConfig{
			ServiceName: "smc-carmarket-web",
			Path:        "/metrics",
		},
		MarketAPI: MarketAPIConfig{
			LocalURL: "http://localhost:3000",
		},
		Session: SessionConfig{
			Backend:         SessionBackendCookie,
			CookieName:      "smc_session",
			IdleTTL:         7 * 24 * 3600,
			CleanupInterval: 3600,
		},
		Database: DatabaseConfig{
			Port:         5432,
			SSLMode:      "disable",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		},
	}
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("APP_ENV"); ok {
		cfg.Environment = v
	}
	if v, ok := os.LookupEnv("MARKET_API_URL"); ok {
		if cfg.Environment == EnvProduction {
			cfg.MarketAPI.ProductionURL = v
		} else {
			cfg.MarketAPI.LocalURL = v
		}
	}
	if v, ok := os.LookupEnv("SESSION_SECRET"); ok {
		cfg.Session.Secret = v
	}
	if v, ok := os.LookupEnv("SESSION_BACKEND"); ok {
		cfg.Session.Backend = v
	}
	if v, ok := os.LookupEnv("CSRF_AUTH_KEY"); ok {
		cfg.CSRF.AuthKey = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvLocal, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}

	if c.APIBaseURL() == "" {
		return fmt.Errorf("%w: market_api url is empty for environment %q", ErrInvalidConfig, c.Environment)
	}

	switch c.Session.Backend {
	case SessionBackendCookie, SessionBackendPostgres:
		if len(c.Session.Secret) < 32 {
			return fmt.Errorf("%w: session.secret must be at least 32 bytes", ErrInvalidConfig)
		}
	case SessionBackendMemory:
		if c.Environment == EnvProduction {
			return fmt.Errorf("%w: memory session backend is not allowed in production", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidConfig, c.Session.Backend)
	}

	if c.Session.Backend == SessionBackendPostgres && (c.Session.CleanupInterval <= 0 || c.Session.IdleTTL <= 0) {
		return fmt.Errorf("%w: session.cleanup_interval and session.idle_ttl must be positive", ErrInvalidConfig)
	}

	switch len(c.Session.EncryptionKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: session.encryption_key must be 16, 24 or 32 bytes", ErrInvalidConfig)
	}

	if c.CSRF.Enabled && len(c.CSRF.AuthKey) != 32 {
		return fmt.Errorf("%w: csrf.auth_key must be exactly 32 bytes", ErrInvalidConfig)
	}

	return nil
}

// APIBaseURL возвращает адрес REST API для текущего окружения
func (c *Config) APIBaseURL() string {
	if c.Environment == EnvProduction {
		return strings.TrimRight(c.MarketAPI.ProductionURL, "/")
	}
	return strings.TrimRight(c.MarketAPI.LocalURL, "/")
}
