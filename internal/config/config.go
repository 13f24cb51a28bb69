package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config configuración completa del servicio, cargada desde config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Kafka     KafkaConfig     `toml:"kafka"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Uploads   UploadsConfig   `toml:"uploads"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Company   CompanyConfig   `toml:"company"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // segundos
	WriteTimeout    int `toml:"write_timeout"`    // segundos
	IdleTimeout     int `toml:"idle_timeout"`     // segundos
	ShutdownTimeout int `toml:"shutdown_timeout"` // segundos
}

// DatabaseConfig configuración de PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // segundos
}

// DSN devuelve la cadena de conexión de PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig configuración de Redis (carritos y cache de top tours)
type RedisConfig struct {
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	TopToursTTL int    `toml:"top_tours_ttl"` // segundos
	DialTimeout int    `toml:"dial_timeout"`  // segundos
}

// KafkaConfig configuración del publicador de eventos de reservas
type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// LogsConfig configuración del logger
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configuración de métricas Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// UploadsConfig configuración del almacenamiento de imágenes
type UploadsConfig struct {
	Dir       string `toml:"dir"`
	BaseURL   string `toml:"base_url"`
	MaxSizeMB int64  `toml:"max_size_mb"`
}

// CORSConfig orígenes permitidos para el frontend
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig límite de peticiones por cliente para endpoints de escritura
type RateLimitConfig struct {
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// CompanyConfig datos del operador usados en vouchers y enlaces de contacto
type CompanyConfig struct {
	Name          string `toml:"name"`
	PublicBaseURL string `toml:"public_base_url"`
	WhatsAppPhone string `toml:"whatsapp_phone"`
}

// Load lee y valida la configuración desde un archivo TOML
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Redis.TopToursTTL == 0 {
		cfg.Redis.TopToursTTL = 300
	}
	if cfg.Uploads.MaxSizeMB == 0 {
		cfg.Uploads.MaxSizeMB = 10
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 5
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}

	return &cfg, nil
}
