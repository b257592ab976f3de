package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Report   ReportConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// ReportConfig carries the tunables of the statement and valuation engines.
type ReportConfig struct {
	// DayCountBasis converts leftover days into fractional years when
	// computing asset age (365 or 365.25).
	DayCountBasis float64
	// InflationRate is the default annual rate for insurance
	// replacement-value estimates, in percent.
	InflationRate float64
	// TopCategoryLimit bounds the by-category breakdowns on the dashboard.
	TopCategoryLimit uint64
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables still apply (Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	dayCountBasis, err := strconv.ParseFloat(getEnv("REPORT_DAY_COUNT_BASIS", "365.25"), 64)
	if err != nil || dayCountBasis <= 0 {
		dayCountBasis = 365.25
	}
	inflationRate, err := strconv.ParseFloat(getEnv("REPORT_INFLATION_RATE", "3.0"), 64)
	if err != nil || inflationRate < 0 {
		inflationRate = 3.0
	}
	topCategories, _ := strconv.Atoi(getEnv("REPORT_TOP_CATEGORY_LIMIT", "5"))
	if topCategories <= 0 {
		topCategories = 5
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "clubbooks"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		Report: ReportConfig{
			DayCountBasis:    dayCountBasis,
			InflationRate:    inflationRate,
			TopCategoryLimit: uint64(topCategories),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
