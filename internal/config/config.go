package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса (config.toml + переопределения из окружения)
type Config struct {
	Server    Server    `toml:"server"`
	Database  Database  `toml:"database"`
	Redis     Redis     `toml:"redis"`
	Logs      Logs      `toml:"logs"`
	Metrics   Metrics   `toml:"metrics"`
	Booking   Booking   `toml:"booking"`
	Sheets    Sheets    `toml:"sheets"`
	Notify    Notify    `toml:"notify"`
	Reminders Reminders `toml:"reminders"`
}

type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

// DSN возвращает строку подключения к PostgreSQL
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type Booking struct {
	// MasterUserID chat id единственного мастера; запросы с этим X-User-ID
	// получают роль master
	MasterUserID        string `toml:"master_user_id"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	FreeDatesDaysAhead  int    `toml:"free_dates_days_ahead"`
}

type Sheets struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"`
}

type Notify struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"`
}

type Reminders struct {
	Enabled              bool `toml:"enabled"`
	CheckIntervalSeconds int  `toml:"check_interval_seconds"`
}

// Load читает конфигурацию из toml файла
// Секреты могут быть переопределены переменными окружения (.env поддерживается)
func Load(path string) (*Config, error) {
	// .env опционален - ошибка отсутствия файла игнорируется
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SHEETS_TOKEN"); v != "" {
		cfg.Sheets.Token = v
	}
	if v := os.Getenv("NOTIFY_TOKEN"); v != "" {
		cfg.Notify.Token = v
	}
	if v := os.Getenv("MASTER_USER_ID"); v != "" {
		cfg.Booking.MasterUserID = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("config: database.host and database.dbname are required")
	}
	if c.Booking.MasterUserID == "" {
		return fmt.Errorf("config: booking.master_user_id is required")
	}
	if c.Booking.SlotDurationMinutes == 0 {
		c.Booking.SlotDurationMinutes = 60
	}
	if c.Booking.FreeDatesDaysAhead == 0 {
		c.Booking.FreeDatesDaysAhead = 30
	}
	if c.Reminders.CheckIntervalSeconds == 0 {
		c.Reminders.CheckIntervalSeconds = 60
	}
	return nil
}
