package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	AdminPasswordHash string
}

// StorageConfig selects where state snapshots live.
type StorageConfig struct {
	Type     string // "local" or "postgres"
	BasePath string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./data"),
	}

	// Database configuration (only used when STORAGE_TYPE=postgres)
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "paylite"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Storage.Type != "local" && c.Storage.Type != "postgres" {
		return fmt.Errorf("STORAGE_TYPE must be 'local' or 'postgres'")
	}
	if c.Storage.Type == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when STORAGE_TYPE=postgres")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
