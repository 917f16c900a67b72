package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mailgate/resend-mcp/internal/server"
	"github.com/mailgate/resend-mcp/pkg/logger"
	"github.com/mailgate/resend-mcp/pkg/mailer"
	"github.com/mailgate/resend-mcp/pkg/mailer/resend"
	"github.com/mailgate/resend-mcp/pkg/mailer/templates"
)

func main() {
	log := logger.NewWithSentry(logger.SentryConfig{
		DSN:         os.Getenv("SENTRY_DSN"),
		Environment: getEnv("SENTRY_ENVIRONMENT", "production"),
	}, server.RequestIDExtractor())

	client := resend.New(resend.Config{
		BaseURL: getEnv("RESEND_BASE_URL", resend.DefaultBaseURL),
		Timeout: getDurationEnv("RESEND_TIMEOUT", resend.DefaultTimeout),
	}, resend.WithLogger(log))

	srv := server.New(server.Config{
		Addr:            getEnv("ADDRESS", ":8080"),
		AllowedOrigins:  strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
	}, client, mailer.NewRenderer(templates.FS), log)

	// Run the server (blocks until shutdown)
	if err := srv.Run(context.Background()); err != nil {
		log.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

// getEnv returns environment variable value or default if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv parses a duration environment variable, falling back to the
// default on absence or parse failure.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
