package config

import (
	"os"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string // only consumed by the keycheck tool
}

type Config struct {
	Stripe      StripeConfig
	AppURL      string // front-end origin, also the base for checkout redirect URLs
	Port        string
	Environment string
	ServiceName string
}

func LoadConfig() *Config {
	cfg := &Config{
		ServiceName: "LlamaTrip Payments API",
	}

	// Stripe config
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.PriceID = os.Getenv("STRIPE_PRICE_ID")

	// Server config
	cfg.AppURL = getEnv("APP_URL", "http://localhost:8080")
	cfg.Port = getEnv("PORT", "3001")
	cfg.Environment = getEnv("APP_ENV", "development")

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
