package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds database configuration for both the app and admin roles.
type Config struct {
	Host      string
	Port      int
	User      string // app role, subject to RLS
	Password  string
	AdminUser string // admin role, BYPASSRLS
	AdminPass string
	Database  string
	SSLMode   string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the app-role connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// AdminDSN returns the admin-role connection string.
func (c Config) AdminDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.AdminUser, c.AdminPass, c.Database, c.SSLMode,
	)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxOpen, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	maxIdle, _ := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	return Config{
		Host:            getEnvOrDefault("DB_HOST", "localhost"),
		Port:            port,
		User:            getEnvOrDefault("DB_USER", "labdex_app"),
		Password:        os.Getenv("DB_PASSWORD"),
		AdminUser:       getEnvOrDefault("DB_ADMIN_USER", "labdex_admin"),
		AdminPass:       getEnvOrDefault("DB_ADMIN_PASSWORD", os.Getenv("DB_PASSWORD")),
		Database:        getEnvOrDefault("DB_NAME", "labdex"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
