// Package config reads process settings from the environment, after
// loading an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
)

type Config struct {
	Port    string
	GinMode string

	// StoreBackend is one of store.BackendFile, store.BackendMongo or
	// store.BackendPostgres.
	StoreBackend string
	DataDir      string

	MongoURI      string
	MongoDatabase string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// BackupDir enables the daily data snapshot for the file backend.
	BackupDir           string
	BackupRetentionDays int
	BackupHour          int

	CORSOrigins []string
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", store.BackendFile)),
		DataDir:      getEnv("DATA_DIR", "./data"),

		MongoURI:      getEnv("MONGODB_URI", ""),
		MongoDatabase: getEnv("MONGODB_DATABASE", "ecommerce"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", ""),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", ""),

		BackupDir:           getEnv("BACKUP_DIR", ""),
		BackupRetentionDays: getEnvInt("BACKUP_RETENTION_DAYS", 4),
		BackupHour:          getEnvInt("BACKUP_HOUR", 2),

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

// Validate rejects settings the process cannot start with.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case store.BackendFile:
		if c.DataDir == "" {
			return fmt.Errorf("DATA_DIR is required for the file backend")
		}
	case store.BackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongo backend")
		}
	case store.BackendPostgres:
		if c.DatabaseURL == "" && c.DBName == "" {
			return fmt.Errorf("DATABASE_URL or DB_NAME is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q (want %s, %s or %s)",
			c.StoreBackend, store.BackendFile, store.BackendMongo, store.BackendPostgres)
	}
	if c.BackupHour < 0 || c.BackupHour > 23 {
		return fmt.Errorf("BACKUP_HOUR must be between 0 and 23, got %d", c.BackupHour)
	}
	if c.BackupRetentionDays < 1 {
		return fmt.Errorf("BACKUP_RETENTION_DAYS must be at least 1, got %d", c.BackupRetentionDays)
	}
	return nil
}

// PostgresDSN prefers DATABASE_URL and falls back to the DB_* parts.
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
