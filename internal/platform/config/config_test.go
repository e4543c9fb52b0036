package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, "stdout", cfg.TracingExporter)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFrom_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_BASE_URL", "https://pcs.example.org/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.org, https://b.example.org,")
	t.Setenv("TRACING_EXPORTER", "OTLP")
	t.Setenv("EMAIL_CONTACT_PHONE", "(11) 5555-0000")

	cfg, err := loadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://pcs.example.org", cfg.GetProperty("FRONTEND_BASE_URL"))
	assert.Equal(t, []string{"https://a.example.org", "https://b.example.org"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "otlp", cfg.TracingExporter)
	assert.Equal(t, "(11) 5555-0000", cfg.GetProperty("EMAIL_CONTACT_PHONE"))
	assert.Equal(t, "", cfg.GetProperty("UNKNOWN_KEY"))
}

func TestLoadFrom_RejectsUnknownTracingExporter(t *testing.T) {
	t.Setenv("TRACING_EXPORTER", "zipkin")

	_, err := loadFrom(viper.New())
	assert.Error(t, err)
}
