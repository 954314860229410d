package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrLoadEnv       = errors.New("config: failed to load .env file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	State      StateConfig      `toml:"state"`
	BookingAPI BookingAPIConfig `toml:"booking_api"`
	Recognizer RecognizerConfig `toml:"recognizer"`
	Knowledge  KnowledgeConfig  `toml:"knowledge"`
	Auth       AuthConfig       `toml:"auth"`
	SMTP       SMTPConfig       `toml:"smtp"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	Bot        BotConfig        `toml:"bot"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения к Postgres
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// StateConfig хранилище состояния диалогов
type StateConfig struct {
	Backend string `toml:"backend" validate:"required,oneof=memory redis postgres"`
	TTL     int    `toml:"ttl"` // секунды, 0 без ограничения (только redis)
}

// TTLDuration TTL в виде time.Duration
func (c StateConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

type BookingAPIConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=1"`
}

type RecognizerConfig struct {
	Endpoint string  `toml:"endpoint" validate:"required,url"`
	Key      string  `toml:"key"`
	MinScore float64 `toml:"min_score" validate:"min=0,max=1"`
	Timeout  int     `toml:"timeout" validate:"min=1"`
}

type KnowledgeConfig struct {
	File     string  `toml:"file" validate:"required"`
	MinScore float64 `toml:"min_score" validate:"min=0,max=1"`
	Watch    bool    `toml:"watch"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" validate:"required,min=16"`
}

type SMTPConfig struct {
	Host     string `toml:"host" validate:"required"`
	Port     int    `toml:"port" validate:"required"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from" validate:"required,email"`
	Contact  string `toml:"contact" validate:"required"` // Контакт для писем владельцам
}

type RateLimitConfig struct {
	PerSecond float64 `toml:"per_second" validate:"gt=0"`
	Burst     int     `toml:"burst" validate:"min=1"`
}

type BotConfig struct {
	Companies []string `toml:"companies"`
}

// Load читает .env (если есть), TOML файл, применяет секреты из окружения и валидирует результат
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrLoadEnv, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	applyEnv(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// applyEnv секреты из окружения перекрывают значения из файла
func applyEnv(cfg *Config) {
	overrides := []struct {
		env string
		dst *string
	}{
		{"DB_PASSWORD", &cfg.Database.Password},
		{"REDIS_PASSWORD", &cfg.Redis.Password},
		{"JWT_SECRET", &cfg.Auth.JWTSecret},
		{"SMTP_PASSWORD", &cfg.SMTP.Password},
		{"RECOGNIZER_KEY", &cfg.Recognizer.Key},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.env); ok {
			*o.dst = v
		}
	}
}
