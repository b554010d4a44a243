package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Провайдеры доставки уведомлений
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderLog    = "log"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tracing  TracingConfig  `toml:"tracing"`
	Notifier NotifierConfig `toml:"notifier"`
	Database DatabaseConfig `toml:"database"`
	Bootcamp BootcampConfig `toml:"bootcamp"`
}

// ServerConfig настройки HTTP-сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int   `toml:"http_port"`
	ReadTimeout     int   `toml:"read_timeout"`
	WriteTimeout    int   `toml:"write_timeout"`
	IdleTimeout     int   `toml:"idle_timeout"`
	ShutdownTimeout int   `toml:"shutdown_timeout"`
	MaxBodyBytes    int64 `toml:"max_body_bytes"`
	// AllowedOrigins источники, которым разрешены CORS-запросы форм; пусто - CORS выключен
	AllowedOrigins []string `toml:"allowed_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// TracingConfig настройки OpenTelemetry
type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

// NotifierConfig настройки отправки уведомлений
type NotifierConfig struct {
	Provider      string       `toml:"provider"`
	From          string       `toml:"from"`
	OperatorEmail string       `toml:"operator_email"`
	OperatorName  string       `toml:"operator_name"`
	Resend        ResendConfig `toml:"resend"`
	SMTP          SMTPConfig   `toml:"smtp"`
}

// ResendConfig настройки Resend API
type ResendConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

// SMTPConfig настройки SMTP-релея
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// DatabaseConfig подключение к PostgreSQL для журнала доставки уведомлений
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// BootcampConfig настройки набора на буткемп
type BootcampConfig struct {
	// EnrollmentDeadline крайний срок записи, RFC 3339 или "2006-01-02T15:04:05" (локальное время)
	EnrollmentDeadline string `toml:"enrollment_deadline"`
}

// Deadline разбирает EnrollmentDeadline; время без зоны трактуется в loc
func (c BootcampConfig) Deadline(loc *time.Location) (time.Time, error) {
	value := strings.TrimSpace(c.EnrollmentDeadline)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bootcamp.enrollment_deadline %q", ErrInvalidConfig, c.EnrollmentDeadline)
	}
	return t, nil
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load читает конфигурацию из TOML-файла, применяет значения по умолчанию
// и переопределения секретов из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			MaxBodyBytes:    64 << 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			ServiceName: "codeclarity-intake",
			Path:        "/metrics",
		},
		Tracing: TracingConfig{
			OTLPEndpoint: "localhost:4317",
			SampleRatio:  1,
		},
		Notifier: NotifierConfig{
			Provider:      ProviderLog,
			From:          "CodeClarity <onboarding@resend.dev>",
			OperatorEmail: "codeclarityteam@gmail.com",
			OperatorName:  "CodeClarity Team",
			Resend: ResendConfig{
				BaseURL: "https://api.resend.com",
				Timeout: 10,
			},
			SMTP: SMTPConfig{Port: 587},
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
		Bootcamp: BootcampConfig{
			EnrollmentDeadline: "2024-06-15T23:59:59",
		},
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Notifier.Provider {
	case ProviderResend:
		if c.Notifier.Resend.APIKey == "" {
			return fmt.Errorf("%w: notifier.resend.api_key (or RESEND_API_KEY) is required", ErrInvalidConfig)
		}
	case ProviderSMTP:
		if c.Notifier.SMTP.Host == "" {
			return fmt.Errorf("%w: notifier.smtp.host is required", ErrInvalidConfig)
		}
	case ProviderLog:
	default:
		return fmt.Errorf("%w: unknown notifier.provider %q", ErrInvalidConfig, c.Notifier.Provider)
	}

	if c.Notifier.OperatorEmail == "" {
		return fmt.Errorf("%w: notifier.operator_email is required", ErrInvalidConfig)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: tracing.sample_ratio must be in [0, 1]", ErrInvalidConfig)
	}

	if _, err := c.Bootcamp.Deadline(time.Local); err != nil {
		return err
	}

	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database.host and database.dbname are required when database is enabled", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("RESEND_API_KEY")); v != "" {
		c.Notifier.Resend.APIKey = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Notifier.SMTP.Password = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
}

func (c *Config) applyDefaults() {
	c.Notifier.Provider = strings.ToLower(strings.TrimSpace(c.Notifier.Provider))
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = 64 << 10
	}
}
