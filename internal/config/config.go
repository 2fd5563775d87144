package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all process-wide settings. It is parsed once at startup
// and passed by reference into constructors; nothing reads the
// environment after Load returns.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	DatabaseDSN string `env:"DATABASE_DSN"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Session lifetimes. The short lifetime applies to ordinary logins,
	// the permanent one when the user checks "remember me".
	TokenLifetimeMinutes       int `env:"TOKEN_LIFETIME_MINUTES" envDefault:"120"`
	PermanentTokenLifetimeDays int `env:"PERMANENT_TOKEN_LIFETIME_DAYS" envDefault:"365"`

	// Seeding. When UseCustomizationData is set the seeder looks for
	// Setup/Users.csv and Setup/images.zip under ContentRootPath.
	UseCustomizationData bool   `env:"USE_CUSTOMIZATION_DATA" envDefault:"false"`
	ContentRootPath      string `env:"CONTENT_ROOT_PATH" envDefault:"."`
	WebRootPath          string `env:"WEB_ROOT_PATH" envDefault:"./wwwroot"`

	// Optional external identity provider used for federated sign-out.
	OIDCProviderScheme string `env:"OIDC_PROVIDER_SCHEME"`
	OIDCIssuer         string `env:"OIDC_ISSUER"`
	OIDCClientID       string `env:"OIDC_CLIENT_ID"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
