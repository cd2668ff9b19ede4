package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	S3        S3Config
	Cache     CacheConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type DataConfig struct {
	Path           string
	Watch          bool
	ReloadSchedule string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	MirrorTable     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

type CacheConfig struct {
	DashboardCacheTTL time.Duration
}

type DashboardConfig struct {
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	Tiles       string
	DefaultHour int
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию из .env (если файл есть) и переменных окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из указанного файла и переменных окружения.
// Отсутствующий файл не является ошибкой.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("API_ALLOW_ORIGINS"),
		},
		Data: DataConfig{
			Path:           v.GetString("DATA_PATH"),
			Watch:          v.GetBool("DATA_WATCH"),
			ReloadSchedule: strings.TrimSpace(v.GetString("DATA_RELOAD_SCHEDULE")),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			MirrorTable:     v.GetString("MIRROR_TABLE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		S3: S3Config{
			Endpoint:  v.GetString("S3_ENDPOINT"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			UseSSL:    v.GetBool("S3_USE_SSL"),
		},
		Cache: CacheConfig{
			DashboardCacheTTL: time.Duration(v.GetInt("DASHBOARD_CACHE_TTL")) * time.Second,
		},
		Dashboard: DashboardConfig{
			CenterLat:   v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:   v.GetFloat64("MAP_CENTER_LON"),
			Zoom:        v.GetInt("MAP_ZOOM"),
			Tiles:       v.GetString("MAP_TILES"),
			DefaultHour: v.GetInt("DEFAULT_HOUR"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("DATA_PATH", "Google_Place_Pattaya_AI_Refined_New.csv")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("MIRROR_TABLE", "places")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("DASHBOARD_CACHE_TTL", 300)
	v.SetDefault("MAP_CENTER_LAT", 12.9236)
	v.SetDefault("MAP_CENTER_LON", 100.8825)
	v.SetDefault("MAP_ZOOM", 13)
	v.SetDefault("MAP_TILES", "CartoDB positron")
	v.SetDefault("DEFAULT_HOUR", 14)
	v.SetDefault("LOG_LEVEL", "info")
}

// Validate проверяет значения, которые нельзя исправить значениями по умолчанию
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return fmt.Errorf("DATA_PATH must not be empty")
	}
	if c.Dashboard.DefaultHour < 0 || c.Dashboard.DefaultHour > 23 {
		return fmt.Errorf("DEFAULT_HOUR must be in [0,23], got %d", c.Dashboard.DefaultHour)
	}
	if strings.HasPrefix(c.Data.Path, "s3://") && c.S3.Endpoint == "" {
		return fmt.Errorf("S3_ENDPOINT is required for %s", c.Data.Path)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN собирает строку подключения в формате key=value для pgx и lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
