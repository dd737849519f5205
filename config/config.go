package config

import (
	"os"
	"strconv"

	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AppConfig struct {
	Port          string
	Database      DatabaseConfig
	JWTSecret     string
	Environment   string
	SettingsPath  string
	TaxonomyPath  string
	HistoryRetain int
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	password := getEnv("DB_PASSWORD", "")

	if password == "" {
		utils.LogWarn("DB_PASSWORD is not set, database features will be unavailable", nil)
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: password,
		DBName:   getEnv("DB_NAME", "resume_analyzer"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetAppConfig() AppConfig {
	retain, _ := strconv.Atoi(getEnv("HISTORY_RETAIN", "50"))
	return AppConfig{
		Port:          getEnv("PORT", "8081"),
		Database:      GetDatabaseConfig(),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		SettingsPath:  getEnv("SETTINGS_PATH", "settings.json"),
		TaxonomyPath:  getEnv("SKILL_TAXONOMY_PATH", ""),
		HistoryRetain: retain,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
