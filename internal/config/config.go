package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Политики отображения часов работы
const (
	PolicyFootnote    = "footnote"
	PolicyMannedSplit = "manned_split"
	PolicyPlain       = "plain"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Engine       EngineConfig       `toml:"engine"`
	Presentation PresentationConfig `toml:"presentation"`
	Reminders    RemindersConfig    `toml:"reminders"`
	Redis        RedisConfig        `toml:"redis"`
	Auth         AuthConfig         `toml:"auth"`
	Migrations   MigrationsConfig   `toml:"migrations"`
}

// ServerConfig настройки HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	APIPrefix       string `toml:"api_prefix"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
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

// EngineConfig настройки расчета часов работы
type EngineConfig struct {
	Timezone          string `toml:"timezone"`
	MaxParallelDays   int    `toml:"max_parallel_days"`
	DefaultResolution int    `toml:"default_resolution"` // секунды
}

// Location загружает часовой пояс сервиса
func (e EngineConfig) Location() (*time.Location, error) {
	if e.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(e.Timezone)
}

// PresentationConfig политика отображения по ID обычной комнаты
type PresentationConfig struct {
	DefaultPolicy string            `toml:"default_policy"`
	Rooms         map[string]string `toml:"rooms"`
}

// PolicyFor возвращает политику отображения для комнаты
func (p PresentationConfig) PolicyFor(roomID int64) string {
	if policy, ok := p.Rooms[strconv.FormatInt(roomID, 10)]; ok {
		return policy
	}
	if p.DefaultPolicy == "" {
		return PolicyFootnote
	}
	return p.DefaultPolicy
}

// RemindersConfig настройки рассылки напоминаний
type RemindersConfig struct {
	Enabled     bool   `toml:"enabled"`
	Cron        string `toml:"cron"`
	LeadMinutes int    `toml:"lead_minutes"`
	WindowMin   int    `toml:"window_minutes"`
	Timeout     int    `toml:"timeout"` // секунды на один проход
}

// Lead за сколько до начала записи отправлять напоминание
func (r RemindersConfig) Lead() time.Duration {
	return time.Duration(r.LeadMinutes) * time.Minute
}

// Window ширина окна выборки записей
func (r RemindersConfig) Window() time.Duration {
	return time.Duration(r.WindowMin) * time.Minute
}

// RedisConfig настройки публикации уведомлений
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
}

// AuthConfig настройки JWT для служебных маршрутов
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// MigrationsConfig настройки миграций схемы
type MigrationsConfig struct {
	AutoApply bool `toml:"auto_apply"`
}

// Load читает конфигурацию из TOML файла и переменных окружения.
// Секреты (DB_PASSWORD, JWT_SECRET, REDIS_PASSWORD) берутся из окружения или .env рядом с файлом
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port is required", ErrInvalidConfig)
	}
	if c.Engine.DefaultResolution <= 0 {
		return fmt.Errorf("%w: engine.default_resolution must be positive", ErrInvalidConfig)
	}
	if c.Engine.MaxParallelDays < 0 {
		return fmt.Errorf("%w: engine.max_parallel_days must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Engine.Location(); err != nil {
		return fmt.Errorf("%w: engine.timezone: %v", ErrInvalidConfig, err)
	}

	policies := map[string]string{"": c.Presentation.DefaultPolicy}
	for room, policy := range c.Presentation.Rooms {
		policies[room] = policy
	}
	for room, policy := range policies {
		switch policy {
		case PolicyFootnote, PolicyMannedSplit, PolicyPlain:
		case "":
			if room != "" {
				return fmt.Errorf("%w: presentation.rooms.%s is empty", ErrInvalidConfig, room)
			}
		default:
			return fmt.Errorf("%w: unknown presentation policy %q", ErrInvalidConfig, policy)
		}
	}

	if c.Reminders.Enabled {
		if c.Reminders.Cron == "" {
			return fmt.Errorf("%w: reminders.cron is required", ErrInvalidConfig)
		}
		if c.Reminders.WindowMin <= 0 || c.Reminders.LeadMinutes < 0 {
			return fmt.Errorf("%w: reminders lead/window", ErrInvalidConfig)
		}
	}
	if c.Redis.Enabled && (c.Redis.Addr == "" || c.Redis.Channel == "") {
		return fmt.Errorf("%w: redis.addr and redis.channel are required", ErrInvalidConfig)
	}

	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			APIPrefix:       "/api/v1",
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{ServiceName: "room_availability", Path: "/metrics"},
		Engine: EngineConfig{
			Timezone:          "Europe/Stockholm",
			MaxParallelDays:   7,
			DefaultResolution: 1800,
		},
		Presentation: PresentationConfig{DefaultPolicy: PolicyFootnote},
		Reminders: RemindersConfig{
			Cron:        "*/5 * * * *",
			LeadMinutes: 60,
			WindowMin:   5,
			Timeout:     60,
		},
		Redis: RedisConfig{Addr: "localhost:6379", Channel: "room-bookings"},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}
