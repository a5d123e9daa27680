package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

const DATE_FORMAT = "2006-01-02"

// PaymentConfig holds the gateway credentials, resolved once at startup.
// Operations that need the gateway fail fast when Enabled() is false
// instead of constructing a client per call.
type PaymentConfig struct {
	Provider      string
	KeyID         string
	KeySecret     string
	WebhookSecret string
	FrontendURL   string
	Currency      string
}

func (c *PaymentConfig) Enabled() bool {
	if c == nil {
		return false
	}
	if c.Provider == "stripe" {
		return c.KeySecret != ""
	}
	return c.KeyID != "" && c.KeySecret != ""
}

var payment *PaymentConfig

func GetPaymentConfig() *PaymentConfig {
	if payment != nil {
		return payment
	}
	provider := os.Getenv("PAYMENT_PROVIDER")
	if provider == "" {
		provider = "razorpay"
	}
	currency := os.Getenv("PAYMENT_CURRENCY")
	if currency == "" {
		currency = "INR"
	}
	if provider == "stripe" {
		payment = &PaymentConfig{
			Provider:      provider,
			KeySecret:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			FrontendURL:   os.Getenv("FRONTEND_URL"),
			Currency:      currency,
		}
		return payment
	}
	payment = &PaymentConfig{
		Provider:      provider,
		KeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		WebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		Currency:      currency,
	}
	return payment
}

// NewPaymentConfig replaces the resolved config, used by tests.
func NewPaymentConfig(c *PaymentConfig) *PaymentConfig {
	payment = c
	return payment
}
