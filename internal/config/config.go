package config

import (
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	// ConnectAttempts is how many times the startup ping is tried.
	ConnectAttempts int
	// AutoCreateSchema creates the inquiries table on startup when it is missing.
	AutoCreateSchema bool
}

// MinIOConfig holds object storage settings used by inquiry exports.
// An empty Endpoint disables exports.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LogConfig controls the zerolog setup.
type LogConfig struct {
	Level    string
	Pretty   bool
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost          string
	Port             string
	CORSAllowOrigins string
	ExportURLExpiry  int
	Log              LogConfig
	Database         DatabaseConfig
	MinIO            MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over .env values.
func Load() *AppConfig {
	k := koanf.New(".")
	// Keys are kept as-is (DB_HOST stays DB_HOST). The provider only errors on a nil callback.
	_ = k.Load(env.Provider("", ".", func(s string) string { return s }), nil)

	return &AppConfig{
		AppHost:          getEnv(k, "APP_HOST", "localhost:8080"),
		Port:             getEnv(k, "PORT", "8080"),
		CORSAllowOrigins: getEnv(k, "CORS_ALLOW_ORIGINS", "*"),
		ExportURLExpiry:  getEnvInt(k, "EXPORT_URL_EXPIRY_SEC", 900),
		Log: LogConfig{
			Level:    strings.ToLower(getEnv(k, "LOG_LEVEL", "info")),
			Pretty:   getEnvBool(k, "LOG_PRETTY", false),
			Timezone: getEnv(k, "TZ_NAME", "UTC"),
		},
		Database: DatabaseConfig{
			Host:               getEnv(k, "DB_HOST", ""),
			Port:               getEnv(k, "DB_PORT", "5432"),
			User:               getEnv(k, "DB_USER", ""),
			Password:           getEnv(k, "DB_PASSWORD", ""),
			Name:               getEnv(k, "DB_NAME", ""),
			SSLMode:            getEnv(k, "DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt(k, "DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt(k, "DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt(k, "DB_CONN_MAX_LIFETIME_SEC", 300),
			ConnectAttempts:    getEnvInt(k, "DB_CONNECT_ATTEMPTS", 5),
			AutoCreateSchema:   getEnvBool(k, "DB_AUTO_CREATE_SCHEMA", true),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv(k, "MINIO_ENDPOINT", ""),
			AccessKey: getEnv(k, "MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv(k, "MINIO_SECRET_KEY", ""),
			Bucket:    getEnv(k, "MINIO_BUCKET", ""),
			UseSSL:    getEnvBool(k, "MINIO_USE_SSL", false),
		},
	}
}

func getEnv(k *koanf.Koanf, key, def string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(k *koanf.Koanf, key string, def bool) bool {
	if v := k.String(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(k *koanf.Koanf, key string, def int) int {
	if v := k.String(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
