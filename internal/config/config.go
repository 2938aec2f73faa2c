package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	Telegram TelegramConfig
	Company  CompanyProfile
	Storage  StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	FrontendURL string
	// WorkdayStart is the clock-in cutoff ("HH:MM", local time); arrivals
	// after it are marked late.
	WorkdayStart string
}

// TelegramConfig holds the bot credentials used for slip delivery and the
// daily recap. An empty BotToken disables both.
type TelegramConfig struct {
	BotToken      string
	AdminChatID   string
	RecapInterval time.Duration
}

// CompanyProfile is the letterhead printed on payroll slips.
type CompanyProfile struct {
	Name         string
	Address      string
	LogoPath     string
	LogoPosition string // top, left, right
	TextAlign    string // left, center, right
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sdm_erp"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
		WorkdayStart: getEnv("WORKDAY_START", "09:00"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	recapInterval, err := time.ParseDuration(getEnv("TELEGRAM_RECAP_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_RECAP_INTERVAL: %w", err)
	}

	config.Telegram = TelegramConfig{
		BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
		AdminChatID:   getEnv("TELEGRAM_ADMIN_CHAT_ID", ""),
		RecapInterval: recapInterval,
	}

	config.Company = CompanyProfile{
		Name:         getEnv("COMPANY_NAME", "SDM ERP"),
		Address:      getEnv("COMPANY_ADDRESS", ""),
		LogoPath:     getEnv("COMPANY_LOGO_PATH", ""),
		LogoPosition: getEnv("COMPANY_LOGO_POSITION", "left"),
		TextAlign:    getEnv("COMPANY_TEXT_ALIGN", "left"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

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
	switch c.Company.LogoPosition {
	case "top", "left", "right":
	default:
		return fmt.Errorf("COMPANY_LOGO_POSITION must be top, left or right")
	}
	switch c.Company.TextAlign {
	case "left", "center", "right":
	default:
		return fmt.Errorf("COMPANY_TEXT_ALIGN must be left, center or right")
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
