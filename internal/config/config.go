package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	Cleanup  CleanupConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type AIConfig struct {
	APIKey           string
	Model            string
	RetryMaxAttempts int
	Timeout          time.Duration
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

type StorageConfig struct {
	UploadPath  string
	TempPath    string
	MaxFileSize int64
}

type CleanupConfig struct {
	Interval        time.Duration
	FileRetention   time.Duration
	DBRetentionDays int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "rezoom"),
		},
		AI: AIConfig{
			APIKey:           getEnv("GEMINI_API_KEY", ""),
			Model:            getEnv("AI_MODEL", "gemini-2.5-flash"),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			Timeout:          getEnvAsDuration("AI_TIMEOUT", "60s"),
		},
		SMTP: SMTPConfig{
			Host:      getEnv("SMTP_SERVER", "smtp.gmail.com"),
			Port:      getEnvAsInt("SMTP_PORT", 587),
			Username:  getEnv("SMTP_USER", ""),
			Password:  getEnv("SMTP_PASS", ""),
			FromEmail: getEnv("FROM_EMAIL", getEnv("SMTP_USER", "")),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			TempPath:    getEnv("TEMP_PATH", "./tmp"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Cleanup: CleanupConfig{
			Interval:        getEnvAsDuration("CLEANUP_INTERVAL", "10m"),
			FileRetention:   getEnvAsDuration("FILE_RETENTION", "1h"),
			DBRetentionDays: getEnvAsInt("DB_RETENTION_DAYS", 90),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
