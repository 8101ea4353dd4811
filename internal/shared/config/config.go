package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	DatabaseURL     string

	// Identity provider (bearer-token resolution).
	IdentityURL       string
	IdentityAPIKey    string
	IdentityJWTSecret string

	// Generative AI provider.
	GeminiAPIKey string
	GeminiModel  string

	// Payment providers.
	StripeSecretKey   string
	PayPalClientID    string
	PayPalSecret      string
	PayPalLive        bool
	PremiumPriceCents int64
	PremiumCurrency   string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")
	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		Env:               env,
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:       dbURL,
		IdentityURL:       getEnv("IDENTITY_URL", ""),
		IdentityAPIKey:    getEnv("IDENTITY_API_KEY", ""),
		IdentityJWTSecret: getEnv("IDENTITY_JWT_SECRET", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		StripeSecretKey:   getEnv("STRIPE_SECRET_KEY", ""),
		PayPalClientID:    getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalSecret:      getEnv("PAYPAL_SECRET", ""),
		PayPalLive:        getEnv("PAYPAL_ENV", "sandbox") == "live",
		PremiumPriceCents: getEnvInt64("PREMIUM_PRICE_CENTS", 999),
		PremiumCurrency:   strings.ToLower(getEnv("PREMIUM_CURRENCY", "usd")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		log.Printf("config: %s invalid, using default %d", key, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
