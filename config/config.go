package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration, loaded from the environment
// with optional .env support.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Log      LogConfig
}

// DatabaseConfig holds the relational store connection settings.
type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string
	Mode string
}

// LogConfig holds the structured-logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// DSN builds the Postgres connection string. TimeZone is pinned to UTC
// so timestamp columns never shift with the server's local zone.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment
// variables always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "climb_hub")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	cfg := &Config{
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Mode: v.GetString("GIN_MODE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("DB_NAME must not be empty")
	}

	return cfg, nil
}
