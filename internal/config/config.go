package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// DatabaseConfig points at the local SQLite file. There is no database
// server; the whole application is offline-first.
type DatabaseConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
	// Operator credentials. PasswordHash (bcrypt) wins over Password when
	// both are set; the plaintext Password exists for first-run setups.
	Username     string
	Password     string
	PasswordHash string
}

type PrinterConfig struct {
	Type     string // usb, network, or none
	USBPath  string
	Address  string
	SpoolDir string // fallback output directory for plain-text receipts
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int // seconds
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "billing-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_PATH", "./billing.db")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD", "admin")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_SPOOL_DIR", "./spool")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Auth: AuthConfig{
			JWTSecret:    viper.GetString("JWT_SECRET"),
			TokenExpiry:  time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			Username:     viper.GetString("AUTH_USERNAME"),
			Password:     viper.GetString("AUTH_PASSWORD"),
			PasswordHash: viper.GetString("AUTH_PASSWORD_HASH"),
		},
		Printer: PrinterConfig{
			Type:     viper.GetString("PRINTER_TYPE"),
			USBPath:  viper.GetString("PRINTER_USB_PATH"),
			Address:  viper.GetString("PRINTER_ADDRESS"),
			SpoolDir: viper.GetString("PRINTER_SPOOL_DIR"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// DSN returns the SQLite connection string. WAL mode keeps concurrent
// reads from blocking the single writer; the busy timeout covers lock
// contention between them.
func (c *DatabaseConfig) DSN() string {
	return c.Path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}
