package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	LogLevel       string
	MigrationsPath string

	FrontendBaseURL string

	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	EmailFrom          string
	EmailSignatureName string
	EmailContactPhone  string

	RedisURL  string
	RateLimit string

	PostHogAPIKey   string
	PostHogEndpoint string

	TracingEnabled  bool
	TracingExporter string
	OTLPEndpoint    string

	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	props *viper.Viper
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("EMAIL_FROM", "no-reply@pcs.local")
	v.SetDefault("EMAIL_SIGNATURE_NAME", "Equipe PCS")
	v.SetDefault("EMAIL_CONTACT_PHONE", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_EXPORTER", "stdout")
	v.SetDefault("OTLP_ENDPOINT", "localhost:4318")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.AutomaticEnv()

	cfg := &Config{props: v}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.FrontendBaseURL = strings.TrimRight(v.GetString("FRONTEND_BASE_URL"), "/")

	cfg.SMTPHost = v.GetString("SMTP_HOST")
	cfg.SMTPPort = v.GetInt("SMTP_PORT")
	cfg.SMTPUsername = v.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = v.GetString("SMTP_PASSWORD")
	cfg.EmailFrom = v.GetString("EMAIL_FROM")
	cfg.EmailSignatureName = v.GetString("EMAIL_SIGNATURE_NAME")
	cfg.EmailContactPhone = v.GetString("EMAIL_CONTACT_PHONE")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Emails will only be logged.")
	}

	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.PostHogAPIKey = v.GetString("POSTHOG_API_KEY")
	cfg.PostHogEndpoint = v.GetString("POSTHOG_ENDPOINT")

	cfg.TracingEnabled = v.GetBool("TRACING_ENABLED")
	cfg.TracingExporter = strings.ToLower(v.GetString("TRACING_EXPORTER"))
	cfg.OTLPEndpoint = v.GetString("OTLP_ENDPOINT")
	if cfg.TracingExporter != "stdout" && cfg.TracingExporter != "otlp" {
		return nil, fmt.Errorf("invalid TRACING_EXPORTER %q: expected stdout or otlp", cfg.TracingExporter)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	shutdown, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdown = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT. Defaulting to %s.\n", shutdown)
	}
	cfg.ShutdownTimeout = shutdown

	return cfg, nil
}

// GetProperty returns the raw string value of key, or "" when unset.
func (c *Config) GetProperty(key string) string {
	if key == "FRONTEND_BASE_URL" {
		return c.FrontendBaseURL
	}
	if c.props == nil {
		return ""
	}
	return c.props.GetString(key)
}
