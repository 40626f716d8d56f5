// Package config builds the process-wide configuration once at startup.
// Handlers and services receive the resulting struct explicitly; nothing in
// the request path reads the environment.
package config

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/siteforms/siteforms-api/internal/apperrors"
	awsclient "github.com/siteforms/siteforms-api/internal/client/aws"
	"github.com/siteforms/siteforms-api/internal/helpers"
	"github.com/siteforms/siteforms-api/internal/logger"
)

// Email provider identifiers selectable via EMAIL_PROVIDER.
const (
	ProviderBrevo  = "brevo"
	ProviderResend = "resend"
)

// Config holds all process-wide settings. It is constructed once in Load and
// passed down; it is never mutated after startup.
type Config struct {
	Stage string
	Port  string

	// Email delivery
	EmailProvider string
	BrevoAPIKey   string
	ResendAPIKey  string
	SenderName    string
	SenderEmail   string
	AdminEmail    string
	ReplyTo       string
	CCEmails      []string

	// Branding
	BaseURL   string
	LogoPath  string
	EmbedLogo bool

	// Uploads
	UploadDir string
}

// Load reads the environment and constructs the Config. Required values that
// are missing produce a ConfigurationError; the caller is expected to treat
// that as fatal.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{
		Stage:         getEnv("STAGE", helpers.StageLocal),
		Port:          getEnv("API_PORT", "8000"),
		EmailProvider: strings.ToLower(getEnv("EMAIL_PROVIDER", ProviderBrevo)),
		SenderName:    getEnv("SENDER_NAME", "Siteforms"),
		SenderEmail:   getEnv("SENDER_EMAIL", "no-reply@siteforms.io"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		BaseURL:       strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		LogoPath:      getEnv("LOGO_PATH", "/assets/logo.png"),
		EmbedLogo:     os.Getenv("EMBED_LOGO") == "true",
		UploadDir:     getEnv("UPLOAD_DIR", "public/uploads/images"),
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, &apperrors.ConfigurationError{Key: "STAGE", Reason: "must be one of prod, dev, local"}
	}

	if cfg.AdminEmail == "" {
		return nil, &apperrors.ConfigurationError{Key: "ADMIN_EMAIL", Reason: "required"}
	}
	if !helpers.IsValidEmail(cfg.AdminEmail) {
		return nil, &apperrors.ConfigurationError{Key: "ADMIN_EMAIL", Reason: "not a valid email address"}
	}

	// Reply-to defaults to the operator address when not overridden.
	cfg.ReplyTo = getEnv("REPLY_TO_EMAIL", cfg.AdminEmail)

	// CC list is a comma-separated env value; syntactically invalid entries
	// are dropped silently rather than failing the whole config.
	cfg.CCEmails = parseCCList(os.Getenv("CC_EMAILS"))

	switch cfg.EmailProvider {
	case ProviderBrevo:
		key, err := resolveAPIKey(ctx, "BREVO_API_KEY_SECRET_ARN", "BREVO_API_KEY")
		if err != nil {
			return nil, &apperrors.ConfigurationError{Key: "BREVO_API_KEY", Reason: "required"}
		}
		cfg.BrevoAPIKey = key
	case ProviderResend:
		key, err := resolveAPIKey(ctx, "RESEND_API_KEY_SECRET_ARN", "RESEND_API_KEY")
		if err != nil {
			return nil, &apperrors.ConfigurationError{Key: "RESEND_API_KEY", Reason: "required"}
		}
		cfg.ResendAPIKey = key
	default:
		return nil, &apperrors.ConfigurationError{Key: "EMAIL_PROVIDER", Reason: "must be brevo or resend"}
	}

	return cfg, nil
}

// resolveAPIKey fetches the provider API key from Secrets Manager when a
// secret ARN is configured, falling back to the plain environment variable.
// In the local stage the Secrets Manager round-trip is skipped entirely.
func resolveAPIKey(ctx context.Context, secretArnEnvVar, fallbackEnvVar string) (string, error) {
	if os.Getenv(secretArnEnvVar) == "" {
		if value := os.Getenv(fallbackEnvVar); value != "" {
			return value, nil
		}
		return "", &apperrors.ConfigurationError{Key: fallbackEnvVar, Reason: "required"}
	}

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Log.Error("Failed to initialize Secrets Manager client", zap.Error(err))
		// Still honor the plain env var so a broken AWS setup does not take
		// down a deployment that has the key set directly.
		if value := os.Getenv(fallbackEnvVar); value != "" {
			return value, nil
		}
		return "", err
	}

	return secretsClient.GetSecretString(ctx, secretArnEnvVar, fallbackEnvVar)
}

// parseCCList splits a comma-separated address list, trims whitespace and
// keeps only syntactically valid entries.
func parseCCList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, entry := range strings.Split(raw, ",") {
		addr := strings.TrimSpace(entry)
		if addr == "" {
			continue
		}
		if !helpers.IsValidEmail(addr) {
			if logger.Log != nil {
				logger.Log.Warn("Dropping invalid CC address from configuration", zap.String("address", addr))
			}
			continue
		}
		out = append(out, addr)
	}
	return out
}

// getEnv returns the environment variable value or the provided default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
