package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	API     APIConfig
	Server  ServerConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Session SessionConfig
	Search  SearchConfig
	Upload  UploadConfig
}

// APIConfig holds the remote marketplace API settings
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ServerConfig holds stub server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds JWT configuration (stub side signing; the client only decodes)
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// RedisConfig holds Redis configuration for the shared-host session backend
type RedisConfig struct {
	URL      string
	Password string
}

// SessionConfig holds local session storage settings
type SessionConfig struct {
	StoragePath   string
	EncryptionKey string
	Expiry        time.Duration
}

// SearchConfig holds suggestion debounce settings
type SearchConfig struct {
	DebounceInterval time.Duration
	MaxRecent        int
}

// UploadConfig holds client-side upload validation caps
type UploadConfig struct {
	MaxImageBytes  int64
	MaxBannerBytes int64
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
			Timeout: getEnvAsDuration("API_TIMEOUT", 30*time.Second),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Session: SessionConfig{
			StoragePath:   getEnv("SESSION_STORAGE_PATH", "sportmart-session.db"),
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-byte hex string
			Expiry:        getEnvAsDuration("SESSION_EXPIRY", 7*24*time.Hour),
		},
		Search: SearchConfig{
			DebounceInterval: getEnvAsDuration("SEARCH_DEBOUNCE_INTERVAL", 250*time.Millisecond),
			MaxRecent:        getEnvAsInt("SEARCH_MAX_RECENT", 10),
		},
		Upload: UploadConfig{
			MaxImageBytes:  getEnvAsInt64("UPLOAD_MAX_IMAGE_BYTES", 5*1024*1024),
			MaxBannerBytes: getEnvAsInt64("UPLOAD_MAX_BANNER_BYTES", 10*1024*1024),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
