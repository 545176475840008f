package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/whalys/booking-service/internal/domain"
	"github.com/whalys/booking-service/pkg/types"
)

// Config корневая конфигурация сервиса, загружается из config.toml.
// Чувствительные значения (пароль redis, ключи EmailJS) перекрываются
// переменными окружения, чтобы не хранить их в файле.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Redis   RedisConfig   `toml:"redis"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Booking BookingConfig `toml:"booking"`
	EmailJS EmailJSConfig `toml:"emailjs"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// RedisConfig настройки подключения к KV-хранилищу
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig бизнес-настройки бронирования
type BookingConfig struct {
	// TimezoneOffsetHours фиксированное смещение локального времени сервиса
	// от UTC (Реюньон = 4)
	TimezoneOffsetHours int `toml:"timezone_offset_hours"`

	// Slots каталог слотов HH:MM; пустой список означает каталог по умолчанию
	Slots []string `toml:"slots"`

	// CancelBaseURL публичный базовый URL сервиса для ссылок отмены в письмах
	CancelBaseURL string `toml:"cancel_base_url"`
}

// EmailJSConfig ключи EmailJS, отдаваемые фронтенду.
// Письма отправляет браузер; сервер только хранит и раздает конфигурацию.
type EmailJSConfig struct {
	ServiceID  string `toml:"service_id"`
	PublicKey  string `toml:"public_key"`
	PrivateKey string `toml:"private_key"`
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	return cfg, nil
}

// SlotCatalog возвращает настроенный каталог слотов.
// При пустом списке используется каталог по умолчанию.
func (c BookingConfig) SlotCatalog() ([]types.TimeString, error) {
	if len(c.Slots) == 0 {
		return domain.DefaultSlotCatalog, nil
	}

	catalog := make([]types.TimeString, 0, len(c.Slots))
	for _, s := range c.Slots {
		slot, err := types.NewTimeStringFromString(s)
		if err != nil {
			return nil, fmt.Errorf("config: invalid slot %q: %w", s, err)
		}
		catalog = append(catalog, slot)
	}
	return catalog, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "whalys-booking-service",
		},
		Booking: BookingConfig{
			TimezoneOffsetHours: 4,
			CancelBaseURL:       "http://localhost:8080",
		},
	}
}

// applyEnv перекрывает значения конфигурации переменными окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = n
		}
	}
	if v := os.Getenv("CANCEL_BASE_URL"); v != "" {
		cfg.Booking.CancelBaseURL = v
	}
	if v := os.Getenv("EMAILJS_SERVICE_ID"); v != "" {
		cfg.EmailJS.ServiceID = v
	}
	if v := os.Getenv("EMAILJS_PUBLIC_KEY"); v != "" {
		cfg.EmailJS.PublicKey = v
	}
	if v := os.Getenv("EMAILJS_PRIVATE_KEY"); v != "" {
		cfg.EmailJS.PrivateKey = v
	}
}
