package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/domain"
)

// Config конфигурация сервиса
// Порядок загрузки: значения по умолчанию -> config.toml -> переменные окружения
type Config struct {
	Server    ServerConfig    `toml:"server" envPrefix:"SERVER_"`
	Database  DatabaseConfig  `toml:"database" envPrefix:"DATABASE_"`
	Logs      LogsConfig      `toml:"logs" envPrefix:"LOGS_"`
	Metrics   MetricsConfig   `toml:"metrics" envPrefix:"METRICS_"`
	Cache     CacheConfig     `toml:"cache" envPrefix:"CACHE_"`
	RateLimit RateLimitConfig `toml:"rate_limit" envPrefix:"RATE_LIMIT_"`
	Booking   BookingConfig   `toml:"booking" envPrefix:"BOOKING_"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" env:"READ_TIMEOUT" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" env:"WRITE_TIMEOUT" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" env:"IDLE_TIMEOUT" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" validate:"min=1"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"HOST" validate:"required"`
	Port            int    `toml:"port" env:"PORT" validate:"min=1,max=65535"`
	User            string `toml:"user" env:"USER" validate:"required"`
	Password        string `toml:"password" env:"PASSWORD"`
	DBName          string `toml:"dbname" env:"NAME" validate:"required"`
	SSLMode         string `toml:"sslmode" env:"SSLMODE" validate:"oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"MAX_OPEN_CONNS" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME" validate:"min=0"`
	ConnectAttempts uint   `toml:"connect_attempts" env:"CONNECT_ATTEMPTS" validate:"min=1"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	File  string `toml:"file" env:"FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"ENABLED"`
	Path        string `toml:"path" env:"PATH" validate:"omitempty,startswith=/"`
	ServiceName string `toml:"service_name" env:"SERVICE_NAME" validate:"required"`
}

// CacheConfig кэш справочников (мастера, услуги)
type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds" env:"TTL_SECONDS" validate:"min=0"`
	MaxSize    int `toml:"max_size" env:"MAX_SIZE" validate:"min=1"`
}

// TTL время жизни записи, 0 - кэш выключен
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RateLimitConfig ограничение частоты публичных запросов (Redis)
type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled" env:"ENABLED"`
	RedisAddr     string `toml:"redis_addr" env:"REDIS_ADDR" validate:"required_if=Enabled true"`
	RedisPassword string `toml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `toml:"redis_db" env:"REDIS_DB" validate:"min=0"`
	Limit         int    `toml:"limit" env:"LIMIT" validate:"min=1"`
	WindowSeconds int    `toml:"window_seconds" env:"WINDOW_SECONDS" validate:"min=1"`
}

// Window окно ограничения
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// BookingConfig правила записи для всего салона
type BookingConfig struct {
	Timezone                string `toml:"timezone" env:"TIMEZONE" validate:"required"`
	MinBookingNoticeMinutes int    `toml:"min_booking_notice_minutes" env:"MIN_NOTICE_MINUTES" validate:"min=0"`
	AdvanceBookingDays      int    `toml:"advance_booking_days" env:"ADVANCE_DAYS" validate:"min=0"`
}

// Location часовой пояс салона
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Policy собирает правила записи для use case'ов
func (c BookingConfig) Policy() (domain.BookingPolicy, error) {
	loc, err := c.Location()
	if err != nil {
		return domain.BookingPolicy{}, err
	}
	return domain.BookingPolicy{
		MinBookingNoticeMinutes: c.MinBookingNoticeMinutes,
		AdvanceBookingDays:      c.AdvanceBookingDays,
		Location:                loc,
	}, nil
}

func (c BookingConfig) validateLimits() error {
	if c.MinBookingNoticeMinutes > domain.MaxBookingNoticeMinutes {
		return fmt.Errorf("min_booking_notice_minutes must be at most %d", domain.MaxBookingNoticeMinutes)
	}
	if c.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("advance_booking_days must be at most %d", domain.MaxAdvanceBookingDays)
	}
	return nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnectAttempts: 5,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Cache: CacheConfig{
			TTLSeconds: 60,
			MaxSize:    1000,
		},
		RateLimit: RateLimitConfig{
			Enabled:       false,
			RedisAddr:     "localhost:6379",
			Limit:         60,
			WindowSeconds: 60,
		},
		Booking: BookingConfig{
			Timezone:                "America/Sao_Paulo",
			MinBookingNoticeMinutes: domain.DefaultMinBookingNoticeMinutes,
			AdvanceBookingDays:      domain.DefaultAdvanceBookingDays,
		},
	}
}

// Load читает конфигурацию из файла и переменных окружения
// Отсутствующий файл не является ошибкой
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if _, err := cfg.Booking.Location(); err != nil {
		return nil, fmt.Errorf("booking timezone: %w", err)
	}

	if err := cfg.Booking.validateLimits(); err != nil {
		return nil, fmt.Errorf("validate config: booking: %w", err)
	}

	return cfg, nil
}
