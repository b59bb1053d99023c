package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Routes       RoutesConfig
	Geocoding    GeocodingConfig
	Cache        CacheConfig
	Redis        RedisConfig
	Database     DatabaseConfig
	Destinations DestinationsConfig
	Worker       WorkerConfig
	Log          LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// RoutesConfig - настройки клиента Routes API (матрицы времени в пути)
type RoutesConfig struct {
	APIKey           string
	BaseURL          string
	RequestTimeout   int // seconds
	BatchSize        int
	BatchDelay       time.Duration
	DestinationDelay time.Duration
	RushHour         int // wall-clock hour of the rush departure target
	OffpeakHour      int // wall-clock hour of the off-peak departure target
}

// GeocodingConfig - настройки клиента геокодирования адресов
type GeocodingConfig struct {
	APIKey         string
	BaseURL        string
	RequestTimeout int // seconds
}

// CacheConfig - настройки кеша геокодирования.
// Backend: none | redis | postgres.
type CacheConfig struct {
	GeocodeBackend string
	GeocodeTTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
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
}

type DestinationsConfig struct {
	SeedDefaults bool
}

type WorkerConfig struct {
	Enabled         bool
	RefreshInterval time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env отсутствует - работаем только с переменными окружения
		if _, statErr := os.Stat(".env"); !os.IsNotExist(statErr) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Routes: RoutesConfig{
			APIKey:           viper.GetString("ROUTES_API_KEY"),
			BaseURL:          viper.GetString("ROUTES_BASE_URL"),
			RequestTimeout:   viper.GetInt("ROUTES_TIMEOUT"),
			BatchSize:        viper.GetInt("ROUTES_BATCH_SIZE"),
			BatchDelay:       time.Duration(viper.GetInt("ROUTES_BATCH_DELAY_MS")) * time.Millisecond,
			DestinationDelay: time.Duration(viper.GetInt("ROUTES_DESTINATION_DELAY_MS")) * time.Millisecond,
			RushHour:         viper.GetInt("ROUTES_RUSH_HOUR"),
			OffpeakHour:      viper.GetInt("ROUTES_OFFPEAK_HOUR"),
		},
		Geocoding: GeocodingConfig{
			APIKey:         viper.GetString("GEOCODING_API_KEY"),
			BaseURL:        viper.GetString("GEOCODING_BASE_URL"),
			RequestTimeout: viper.GetInt("GEOCODING_TIMEOUT"),
		},
		Cache: CacheConfig{
			GeocodeBackend: viper.GetString("GEOCODE_CACHE_BACKEND"),
			GeocodeTTL:     time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Destinations: DestinationsConfig{
			SeedDefaults: viper.GetBool("SEED_DEFAULT_DESTINATIONS"),
		},
		Worker: WorkerConfig{
			Enabled:         viper.GetBool("WORKER_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("WORKER_REFRESH_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Routes.BaseURL == "" {
		cfg.Routes.BaseURL = "https://routes.googleapis.com"
	}
	if cfg.Routes.RequestTimeout == 0 {
		cfg.Routes.RequestTimeout = 30
	}
	if cfg.Routes.BatchSize == 0 {
		cfg.Routes.BatchSize = 25
	}
	if cfg.Routes.BatchDelay == 0 {
		cfg.Routes.BatchDelay = 250 * time.Millisecond
	}
	if cfg.Routes.DestinationDelay == 0 {
		cfg.Routes.DestinationDelay = 1 * time.Second
	}
	if cfg.Routes.RushHour == 0 {
		cfg.Routes.RushHour = 17
	}
	if cfg.Routes.OffpeakHour == 0 {
		cfg.Routes.OffpeakHour = 3
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://maps.googleapis.com"
	}
	if cfg.Geocoding.RequestTimeout == 0 {
		cfg.Geocoding.RequestTimeout = 10
	}
	if cfg.Geocoding.APIKey == "" {
		cfg.Geocoding.APIKey = cfg.Routes.APIKey
	}
	if cfg.Cache.GeocodeBackend == "" {
		cfg.Cache.GeocodeBackend = "none"
	}
	if cfg.Cache.GeocodeTTL == 0 {
		cfg.Cache.GeocodeTTL = 24 * time.Hour
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 6 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}
