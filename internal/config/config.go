package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Log      LogConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Deletion DeletionConfig
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type StorageConfig struct {
	// Backend: postgres, sqlite, bolt или memory
	Backend    string
	Key        string
	SQLitePath string
	BoltPath   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type DeletionConfig struct {
	PendingTTL time.Duration
}

const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendBolt     = "bolt"
	BackendMemory   = "memory"
)

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", BackendSQLite),
			Key:        getEnv("STORAGE_KEY", "devTeamData"),
			SQLitePath: getEnv("SQLITE_PATH", "devteam.db"),
			BoltPath:   getEnv("BOLT_PATH", "devteam.bolt"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "devteam"),
			Password: getEnv("DB_PASSWORD", "devteam"),
			DBName:   getEnv("DB_NAME", "devteam"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Deletion: DeletionConfig{
			PendingTTL: getEnvDuration("PENDING_DELETE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
