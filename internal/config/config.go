// Package config загрузка конфигурации сервиса из TOML файла
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Значения по умолчанию для рабочих часов кортов
const (
	DefaultOpenTime            = "08:00"
	DefaultCloseTime           = "22:00"
	DefaultSlotDurationMinutes = 60
)

var (
	// ErrLoadConfig возвращается при ошибке чтения файла конфигурации
	ErrLoadConfig = errors.New("config: failed to load config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Booking  Booking  `toml:"booking"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
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
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Booking рабочие часы кортов и ширина слота расписания
// Явный объект конфигурации: сетка доступности строится только из этих значений
type Booking struct {
	OpenTime            string `toml:"open_time"`
	CloseTime           string `toml:"close_time"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
}

// Load загружает конфигурацию из TOML файла и проставляет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
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

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Database.MigrationsPath == "" {
		c.Database.MigrationsPath = "migrations"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-court-service"
	}

	if c.Booking.OpenTime == "" {
		c.Booking.OpenTime = DefaultOpenTime
	}
	if c.Booking.CloseTime == "" {
		c.Booking.CloseTime = DefaultCloseTime
	}
	if c.Booking.SlotDurationMinutes == 0 {
		c.Booking.SlotDurationMinutes = DefaultSlotDurationMinutes
	}
}

func (c *Config) validate() error {
	open, err := types.NewTimeStringFromString(c.Booking.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: booking.open_time: %v", ErrInvalidConfig, err)
	}
	closeTime, err := types.NewTimeStringFromString(c.Booking.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: booking.close_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closeTime) {
		return fmt.Errorf("%w: booking.open_time must be before booking.close_time", ErrInvalidConfig)
	}
	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_duration_minutes must be positive", ErrInvalidConfig)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	return nil
}
