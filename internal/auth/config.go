package auth

import (
	"fmt"
	"time"

	"datawise-backend/internal/config"
)

const defaultIssuer = "datawise-backend"

// AuthConfig holds the token settings used by the auth service
type AuthConfig struct {
	SecretKey string        `yaml:"secret_key" json:"-"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		SecretKey: cfg.SecretKey,
		TokenTTL:  cfg.TokenTTL(),
		Issuer:    defaultIssuer,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}

	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}

	return nil
}
