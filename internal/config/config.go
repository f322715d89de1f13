package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultSecretKey = "CHANGE_ME"

// Config holds all configuration for the application.
// It is loaded once at startup and must not be mutated afterwards.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	APIPrefix   string `mapstructure:"API_PREFIX"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Token configuration
	SecretKey                string `mapstructure:"SECRET_KEY"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// CORS configuration
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// SMTP configuration
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   int    `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASS"`
	SMTPSender string `mapstructure:"SMTP_SENDER"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.CORSOrigins = normalizeOrigins(config.CORSOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("API_PREFIX", "/api/v1")

	// Database defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "datawise")
	v.SetDefault("DB_SSL_MODE", "disable")

	// Token defaults
	v.SetDefault("SECRET_KEY", defaultSecretKey)
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60*24)

	// CORS defaults
	v.SetDefault("CORS_ORIGINS", []string{
		"https://datawisenew.datawiserservice.com",
		"https://api-datawisenew.datawiserservice.com",
	})

	// SMTP defaults
	v.SetDefault("SMTP_HOST", "smtp.hostinger.com")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("SMTP_USER", "adm@datawiseservice.com")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_SENDER", "adm@datawiseservice.com")
}

// normalizeOrigins accepts both list values and a single comma separated env value
func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.SecretKey == "" || config.SecretKey == defaultSecretKey {
			return fmt.Errorf("SECRET_KEY must be set in production")
		}
	}

	if config.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}

	if config.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	if !strings.HasPrefix(config.APIPrefix, "/") {
		return fmt.Errorf("API_PREFIX must start with '/'")
	}

	if config.DatabaseURL == "" {
		return fmt.Errorf("database url is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TokenTTL returns the access token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
