package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/Oasis-BookingService/pkg/slotclock"
)

// Поддерживаемые бэкенды хранилища
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Поддерживаемые провайдеры уведомлений
const (
	NotifierLog    = "log"
	NotifierResend = "resend"
	NotifierKafka  = "kafka"
)

var (
	// ErrReadConfig возвращается при ошибке чтения или разбора файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	Redis         RedisConfig         `toml:"redis"`
	Database      DatabaseConfig      `toml:"database"`
	Admin         AdminConfig         `toml:"admin"`
	Business      BusinessConfig      `toml:"business"`
	Notifications NotificationsConfig `toml:"notifications"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	CORS          CORSConfig          `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig настройки key-value хранилища
type StorageConfig struct {
	Backend   string `toml:"backend"`
	KeyPrefix string `toml:"key_prefix"`
	// OperationTimeoutMs таймаут одной операции хранилища в миллисекундах
	OperationTimeoutMs int `toml:"operation_timeout_ms"`
	// MaxRetries число попыток оптимистичной транзакции (redis, postgres)
	MaxRetries int `toml:"max_retries"`
}

// OperationTimeout таймаут операции хранилища
func (s StorageConfig) OperationTimeout() time.Duration {
	return time.Duration(s.OperationTimeoutMs) * time.Millisecond
}

type RedisConfig struct {
	// URL имеет приоритет над Addr/Password/DB
	URL      string `toml:"url"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type DatabaseConfig struct {
	// URL полная строка подключения, имеет приоритет над отдельными полями
	URL             string `toml:"url"`
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

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AdminConfig общий секрет администратора (в открытом виде или bcrypt-хеш)
type AdminConfig struct {
	Secret     string `toml:"secret"`
	SecretHash string `toml:"secret_hash"`
}

type BusinessConfig struct {
	Name     string `toml:"name"`
	Timezone string `toml:"timezone"`
}

type NotificationsConfig struct {
	Provider string `toml:"provider"`
	// BaseURL адрес сайта для ссылки отмены
	BaseURL      string   `toml:"base_url"`
	From         string   `toml:"from"`
	ResendAPIKey string   `toml:"resend_api_key"`
	ResendURL    string   `toml:"resend_url"`
	Timeout      int      `toml:"timeout"`
	MaxAttempts  int      `toml:"max_attempts"`
	BackoffMs    int      `toml:"backoff_ms"`
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`
}

// Backoff пауза между попытками отправки уведомления
func (n NotificationsConfig) Backoff() time.Duration {
	return time.Duration(n.BackoffMs) * time.Millisecond
}

// DispatchTimeout общий дедлайн доставки одного уведомления: все попытки
// плюс линейно растущие паузы между ними (backoff, 2*backoff, ...)
func (n NotificationsConfig) DispatchTimeout() time.Duration {
	attempts := n.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	perAttempt := time.Duration(n.Timeout) * time.Second
	pauses := n.Backoff() * time.Duration(attempts*(attempts-1)/2)
	return perAttempt*time.Duration(attempts) + pauses
}

// RateLimitConfig ограничение публичных мутирующих эндпоинтов по IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`

	// TrustProxy брать адрес клиента из X-Forwarded-For (только за reverse proxy)
	TrustProxy bool `toml:"trust_proxy"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из окружения (.env поддерживается) и валидирует результат
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyDefaults()

	// .env может отсутствовать, в этом случае используется только окружение процесса
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "oasis_booking"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = StorageMemory
	}
	if c.Storage.KeyPrefix == "" {
		c.Storage.KeyPrefix = "oasis"
	}
	if c.Storage.OperationTimeoutMs == 0 {
		c.Storage.OperationTimeoutMs = 3000
	}
	if c.Storage.MaxRetries == 0 {
		c.Storage.MaxRetries = 10
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Business.Timezone == "" {
		c.Business.Timezone = "America/New_York"
	}
	if c.Notifications.Provider == "" {
		c.Notifications.Provider = NotifierLog
	}
	if c.Notifications.ResendURL == "" {
		c.Notifications.ResendURL = "https://api.resend.com"
	}
	if c.Notifications.Timeout == 0 {
		c.Notifications.Timeout = 10
	}
	if c.Notifications.MaxAttempts == 0 {
		c.Notifications.MaxAttempts = 3
	}
	if c.Notifications.BackoffMs == 0 {
		c.Notifications.BackoffMs = 500
	}
	if c.Notifications.KafkaTopic == "" {
		c.Notifications.KafkaTopic = "oasis.bookings.notifications"
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
}

func (c *Config) applyEnv() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"ADMIN_PASSWORD", &c.Admin.Secret},
		{"ADMIN_PASSWORD_HASH", &c.Admin.SecretHash},
		{"REDIS_URL", &c.Redis.URL},
		{"DATABASE_DSN", &c.Database.URL},
		{"RESEND_API_KEY", &c.Notifications.ResendAPIKey},
		{"STORAGE_BACKEND", &c.Storage.Backend},
	}

	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok && strings.TrimSpace(v) != "" {
			*o.target = strings.TrimSpace(v)
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Admin.Secret == "" && c.Admin.SecretHash == "" {
		return fmt.Errorf("%w: admin secret is not set (admin.secret, admin.secret_hash or ADMIN_PASSWORD)", ErrInvalidConfig)
	}

	if c.Storage.OperationTimeoutMs < 0 || c.Storage.MaxRetries < 0 {
		return fmt.Errorf("%w: storage timeout and retries must be non-negative", ErrInvalidConfig)
	}

	if _, err := slotclock.LoadLocation(c.Business.Timezone); err != nil {
		return fmt.Errorf("%w: unknown business timezone %q: %v", ErrInvalidConfig, c.Business.Timezone, err)
	}

	switch c.Notifications.Provider {
	case NotifierLog:
	case NotifierResend:
		if c.Notifications.ResendAPIKey == "" || c.Notifications.From == "" {
			return fmt.Errorf("%w: resend provider requires resend_api_key and from", ErrInvalidConfig)
		}
	case NotifierKafka:
		if len(c.Notifications.KafkaBrokers) == 0 {
			return fmt.Errorf("%w: kafka provider requires kafka_brokers", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notification provider %q", ErrInvalidConfig, c.Notifications.Provider)
	}

	return nil
}
