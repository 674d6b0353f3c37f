package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	MongoDB  MongoConfig    `json:"mongodb"`
	Media    MediaConfig    `json:"media"`
	Auth     AuthConfig     `json:"auth"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port         string `json:"port"`
	MediaPort    string `json:"media_port"`
	ReadTimeout  int    `json:"read_timeout"`
	WriteTimeout int    `json:"write_timeout"`
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoConfig contains MongoDB connection configuration for blob storage
type MongoConfig struct {
	URI      string `json:"uri"`
	Database string `json:"database"`
}

// MediaConfig controls how uploaded images are addressed and served
type MediaConfig struct {
	// BaseURL is prepended to stored file IDs to form public image URLs,
	// e.g. http://localhost:8081/media/
	BaseURL string `json:"base_url"`
	// UploadTimeout bounds a single blob upload. Default 30s.
	UploadTimeout time.Duration `json:"upload_timeout"`
}

// AuthConfig contains session token configuration
type AuthConfig struct {
	JWTSecret string        `json:"-"`
	TokenTTL  time.Duration `json:"token_ttl"`
}

// Load builds the configuration from environment variables with defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8080"),
			MediaPort:    getEnvOrDefault("MEDIA_PORT", "8081"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "minisocial"),
			Password:     getEnvOrDefault("DB_PASSWORD", "minisocial123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "minisocial"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 10),
		},
		MongoDB: MongoConfig{
			URI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnvOrDefault("MONGO_DB", "minisocial"),
		},
		Media: MediaConfig{
			BaseURL:       getEnvOrDefault("MEDIA_BASE_URL", "http://localhost:8081/media/"),
			UploadTimeout: time.Duration(getEnvIntOrDefault("UPLOAD_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  time.Duration(getEnvIntOrDefault("TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
	}
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
