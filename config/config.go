package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server  ServerConfig
	DB      DatabaseConfig
	JWT     JWTConfig
	Uploads UploadConfig
	Twilio  TwilioConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `envconfig:"PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL string `envconfig:"DB_URL" default:""`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret      string        `envconfig:"JWT_SECRET" default:""`
	TokenExpiry time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
}

// UploadConfig holds image upload settings.
type UploadConfig struct {
	Dir          string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	PublicPrefix string `envconfig:"UPLOAD_PUBLIC_PREFIX" default:"/uploads"`
	MaxSizeBytes int64  `envconfig:"UPLOAD_MAX_SIZE" default:"5242880"` // 5 MiB
}

// TwilioConfig holds settings for birthday greeting messages.
type TwilioConfig struct {
	AccountSID     string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken      string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	PhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER" default:""`
	WhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER" default:""`
	Enabled        bool   `envconfig:"TWILIO_GREETINGS_ENABLED" default:"false"`
}

// Address returns the server listen address.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
