package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Salary   SalaryConfig
	SMS      SMSConfig
	Dispatch DispatchConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SalaryConfig holds credentials for the external salary system API.
type SalaryConfig struct {
	BaseURL  string
	User     string
	Password string
}

// SMSConfig holds credentials for the outbound SMS gateway.
type SMSConfig struct {
	BaseURL string
	Token   string
	Sender  string
}

// DispatchConfig controls the salary dispatch background job.
type DispatchConfig struct {
	Interval  string
	BatchSize int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "agriculture-hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

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
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// External salary system configuration
	config.Salary = SalaryConfig{
		BaseURL:  getEnv("SALARY_API_BASE_URL", ""),
		User:     getEnv("SALARY_API_USER", ""),
		Password: getEnv("SALARY_API_PASSWORD", ""),
	}

	// SMS gateway configuration
	config.SMS = SMSConfig{
		BaseURL: getEnv("SMS_API_BASE_URL", ""),
		Token:   getEnv("SMS_API_TOKEN", ""),
		Sender:  getEnv("SMS_SENDER_NAME", "AgriHRMS"),
	}

	// Salary dispatch job configuration
	dispatchBatch, err := strconv.Atoi(getEnv("SALARY_DISPATCH_BATCH_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALARY_DISPATCH_BATCH_SIZE: %w", err)
	}

	config.Dispatch = DispatchConfig{
		Interval:  getEnv("SALARY_DISPATCH_INTERVAL", "1m"),
		BatchSize: dispatchBatch,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Salary.BaseURL != "" {
		if !strings.HasPrefix(c.Salary.BaseURL, "http") {
			return fmt.Errorf("SALARY_API_BASE_URL must be an http(s) URL")
		}
		if c.Salary.User == "" || c.Salary.Password == "" {
			return fmt.Errorf("SALARY_API_USER and SALARY_API_PASSWORD are required when SALARY_API_BASE_URL is set")
		}
	}
	if c.SMS.BaseURL != "" && c.SMS.Token == "" {
		return fmt.Errorf("SMS_API_TOKEN is required when SMS_API_BASE_URL is set")
	}
	if c.Dispatch.BatchSize <= 0 {
		return fmt.Errorf("SALARY_DISPATCH_BATCH_SIZE must be positive")
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
