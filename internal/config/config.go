package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Tariff   TariffConfig   `toml:"tariff"`
	Spaces   SpacesConfig   `toml:"spaces"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
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

// DSN собирает строку подключения
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TariffConfig тарифные параметры биллинга.
// Значения хранятся строками, чтобы не терять точность при загрузке.
type TariffConfig struct {
	RatePerHour   string `toml:"rate_per_hour"`
	MinimumCharge string `toml:"minimum_charge"`
}

// SpacesConfig настройки машины состояний парковочных мест
type SpacesConfig struct {
	// StrictTransitions включает исторический "строгий" режим:
	// повторный перевод места в его текущее состояние отклоняется
	StrictTransitions bool `toml:"strict_transitions"`
}

// Дефолтные тарифные значения (применяются, если секция [tariff] не заполнена)
const (
	DefaultRatePerHour   = "10.00"
	DefaultMinimumCharge = "0.00"
)

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-parking-service"
	}
	if cfg.Tariff.RatePerHour == "" {
		cfg.Tariff.RatePerHour = DefaultRatePerHour
	}
	if cfg.Tariff.MinimumCharge == "" {
		cfg.Tariff.MinimumCharge = DefaultMinimumCharge
	}

	// Проверяем тариф на этапе загрузки, чтобы не падать при первом платеже
	if _, err := cfg.Tariff.RatePerHourDecimal(); err != nil {
		return nil, err
	}
	if _, err := cfg.Tariff.MinimumChargeDecimal(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RatePerHourDecimal возвращает тарифную ставку как decimal
func (t TariffConfig) RatePerHourDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(t.RatePerHour)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("config: invalid tariff.rate_per_hour %q: %w", t.RatePerHour, err)
	}
	return rate, nil
}

// MinimumChargeDecimal возвращает минимальную сумму платежа как decimal
func (t TariffConfig) MinimumChargeDecimal() (decimal.Decimal, error) {
	minCharge, err := decimal.NewFromString(t.MinimumCharge)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("config: invalid tariff.minimum_charge %q: %w", t.MinimumCharge, err)
	}
	return minCharge, nil
}
