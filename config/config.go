package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Log        LogConfig
	DB         DBConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Pagination PaginationConfig
}

type AppConfig struct {
	Port            string
	Env             string
	Timezone        string
	CORSAllowOrigin string
}

type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	Timezone      string
	MaxIdleConns  int
	MaxOpenConns  int
	SlowThreshold time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Enabled      bool
	Secret       string
	AccessExpiry time.Duration
}

type PaginationConfig struct {
	MaxLimit int
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_TIMEZONE", "Local")
	viper.SetDefault("CORS_ALLOW_ORIGIN", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DB_MAX_OPEN_CONNS", 100)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AUTH_ENABLED", true)
	viper.SetDefault("PAGINATION_MAX_LIMIT", 100)
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (*Config, error) {
	setDefaults()
	viper.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		viper.SetConfigFile(".env")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:            viper.GetString("APP_PORT"),
			Env:             viper.GetString("APP_ENV"),
			Timezone:        viper.GetString("APP_TIMEZONE"),
			CORSAllowOrigin: viper.GetString("CORS_ALLOW_ORIGIN"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  durationOr("HTTP_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: durationOr("HTTP_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  durationOr("HTTP_IDLE_TIMEOUT", 60*time.Second),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			SSLMode:       viper.GetString("DB_SSLMODE"),
			Timezone:      viper.GetString("APP_TIMEZONE"),
			MaxIdleConns:  viper.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns:  viper.GetInt("DB_MAX_OPEN_CONNS"),
			SlowThreshold: durationOr("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Enabled:      viper.GetBool("AUTH_ENABLED"),
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: durationOr("JWT_ACCESS_EXPIRY", 15*time.Minute),
		},
		Pagination: PaginationConfig{
			MaxLimit: viper.GetInt("PAGINATION_MAX_LIMIT"),
		},
	}

	return config, nil
}

func durationOr(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
