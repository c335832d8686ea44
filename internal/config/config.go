package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// Config конфигурация сервиса, загружаемая из config.toml.
type Config struct {
	Server     Server      `toml:"server"`
	Logs       Logs        `toml:"logs"`
	Metrics    Metrics     `toml:"metrics"`
	Database   Database    `toml:"database"`
	Redis      Redis       `toml:"redis"`
	Auth       Auth        `toml:"auth"`
	Selections Selections  `toml:"selections"`
	Payments   Payments    `toml:"payments"`
	Facility   Integration `toml:"facility_service"`
	Booking    Integration `toml:"booking_service"`
	Payment    Integration `toml:"payment_service"`
}

// Server настройки HTTP-сервера.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Logs настройки логирования.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Database настройки подключения к PostgreSQL.
type Database struct {
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

// DSN возвращает строку подключения к PostgreSQL.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Redis настройки подключения к Redis (хранилище выборок слотов).
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Auth настройки авторизации исходящих вызовов.
// Сервисный bearer-токен выдается внешним auth-сервисом.
type Auth struct {
	ServiceToken string `toml:"service_token"`
}

// Selections настройки хранения выборок слотов.
type Selections struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// Payments настройки платежного оркестратора.
type Payments struct {
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
	InitialDelaySeconds int `toml:"initial_delay_seconds"`
	// MaxPollAttempts = 0 означает поллинг без ограничения (legacy-поведение).
	MaxPollAttempts int `toml:"max_poll_attempts"`

	BankName          string `toml:"bank_name"`
	BankAccountNumber string `toml:"bank_account_number"`
	BankAccountHolder string `toml:"bank_account_holder"`
}

// Integration настройки интеграционного клиента.
type Integration struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load загружает конфигурацию из TOML-файла и проставляет дефолты.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "sport-booking-service.log"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "sport-booking-service"
	}
	if cfg.Selections.TTLMinutes == 0 {
		cfg.Selections.TTLMinutes = 30
	}
	if cfg.Payments.PollIntervalSeconds == 0 {
		cfg.Payments.PollIntervalSeconds = domain.DefaultPollIntervalSeconds
	}
	if cfg.Payments.InitialDelaySeconds == 0 {
		cfg.Payments.InitialDelaySeconds = domain.DefaultInitialDelaySeconds
	}
}

func validate(cfg *Config) error {
	if cfg.Facility.URL == "" {
		return fmt.Errorf("config: facility_service.url is required")
	}
	if cfg.Booking.URL == "" {
		return fmt.Errorf("config: booking_service.url is required")
	}
	if cfg.Payment.URL == "" {
		return fmt.Errorf("config: payment_service.url is required")
	}
	if cfg.Payments.MaxPollAttempts < 0 {
		return fmt.Errorf("config: payments.max_poll_attempts must be >= 0")
	}
	return nil
}
