package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting consumed by the API and the
// worker processes. Values are read once at startup; components receive the
// fields they need, never the whole struct.
type Config struct {
	Port string `envconfig:"PORT" default:"4200"`

	DatabaseURL string `envconfig:"DB_URL" required:"true"`
	RedisURL    string `envconfig:"REDIS_URL"`

	JWTSecret    string        `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"24h"`

	SMSAPIURL string `envconfig:"SMS_API_URL"`
	SMSAPIKey string `envconfig:"SMS_API_KEY"`

	SMTPHost string `envconfig:"SMTP_HOST"`
	SMTPPort int    `envconfig:"SMTP_PORT" default:"465"`
	SMTPUser string `envconfig:"EMAIL"`
	SMTPPass string `envconfig:"EMAIL_PASS"`
}

// Load reads .env (when present) and resolves the Config from the process
// environment. A missing .env file is not an error; missing required variables
// are.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
