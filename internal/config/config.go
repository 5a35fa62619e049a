package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	// ShutdownTimeout: время на graceful shutdown в секундах
	ShutdownTimeout int `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig содержит настройки подключения к БД
type DatabaseConfig struct {
	// Driver: "postgres" (по умолчанию) или "sqlite"
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`

	// SQLitePath: путь к файлу SQLite (только для driver=sqlite)
	SQLitePath string `mapstructure:"sqlite_path"`

	// MigrationsPath: папка с SQL-миграциями для golang-migrate
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig содержит настройки подключения к Redis.
// Redis необязателен: без него не работают кеш категорий и rate limiting.
type RedisConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт).
	Addrs []string `mapstructure:"addrs"`

	// Addr: адрес для режима 'single', используется если Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	MaxRetries      int `mapstructure:"max_retries"`
	MinRetryBackoff int `mapstructure:"min_retry_backoff"` // мс
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"` // мс

	// CategoryTTL: время жизни закешированного списка категорий
	CategoryTTL time.Duration `mapstructure:"category_ttl"`
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowMethods []string `mapstructure:"allow_methods"`
	AllowHeaders []string `mapstructure:"allow_headers"`
}

// RateLimitConfig содержит настройки ограничения частоты запросов (требует Redis)
type RateLimitConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// SQLiteDSN формирует DSN для SQLite с включенными внешними ключами
func (d *DatabaseConfig) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", d.SQLitePath)
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("server.shutdown_timeout", 10)

	vip.SetDefault("database.driver", DriverPostgres)
	vip.SetDefault("database.host", "localhost")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.sqlite_path", "./data/trivia.db")
	vip.SetDefault("database.migrations_path", "migrations")

	vip.SetDefault("redis.enabled", false)
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.category_ttl", 10*time.Minute)

	vip.SetDefault("cors.allow_origins", []string{"*"})
	vip.SetDefault("cors.allow_methods", []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"})
	vip.SetDefault("cors.allow_headers", []string{"Content-Type", "Authorization"})

	vip.SetDefault("rate_limit.enabled", false)
	vip.SetDefault("rate_limit.max_requests", 60)
	vip.SetDefault("rate_limit.window", time.Minute)
}

func bindEnv(vip *viper.Viper) {
	// Привязка для Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	// Привязка для секции Database
	vip.BindEnv("database.driver", "DATABASE_DRIVER")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.sqlite_path", "DATABASE_SQLITE_PATH")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	// Привязка для секции Redis
	vip.BindEnv("redis.enabled", "REDIS_ENABLED")
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")
	vip.BindEnv("redis.category_ttl", "REDIS_CATEGORY_TTL")

	// Привязка для CORS и rate limiting
	vip.BindEnv("cors.allow_origins", "CORS_ALLOW_ORIGINS")
	vip.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
}

// Load загружает конфигурацию из файла (если он есть) и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр, чтобы избежать глобального состояния

	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		// Отсутствие файла не ошибка: есть умолчания и переменные окружения
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Списки из переменных окружения приходят одной строкой через запятую
	cfg.Redis.Addrs = splitList(cfg.Redis.Addrs)
	cfg.CORS.AllowOrigins = splitList(cfg.CORS.AllowOrigins)

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Database Driver: %s", cfg.Database.Driver)
		if cfg.Database.Driver == DriverSQLite {
			log.Printf("Database SQLite Path: %s", cfg.Database.SQLitePath)
		} else {
			log.Printf("Database Host: %s:%s", cfg.Database.Host, cfg.Database.Port)
			log.Printf("Database Name: %s", cfg.Database.DBName)
		}
		log.Printf("Redis Enabled: %t (mode: %s)", cfg.Redis.Enabled, cfg.Redis.Mode)
		log.Printf("Rate Limit Enabled: %t", cfg.RateLimit.Enabled)
		log.Printf("-----------------------------------------")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
			return fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite driver requires database.sqlite_path (check DATABASE_SQLITE_PATH env var)")
		}
	default:
		return fmt.Errorf("unsupported database driver %q (expected %q or %q)", c.Database.Driver, DriverPostgres, DriverSQLite)
	}

	if c.Redis.Enabled && len(c.Redis.Addrs) == 0 && c.Redis.Addr == "" {
		return fmt.Errorf("redis is enabled but no address is configured (check REDIS_ADDR or REDIS_ADDRS env vars)")
	}
	if c.RateLimit.Enabled {
		if !c.Redis.Enabled {
			return fmt.Errorf("rate limiting requires redis (set REDIS_ENABLED=true)")
		}
		if c.RateLimit.MaxRequests < 1 || c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate limit requires positive max_requests and window")
		}
	}
	return nil
}

func splitList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}
