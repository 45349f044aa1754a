package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	OAuth      OAuthConfig
	Cloudinary CloudinaryConfig
	Razorpay   RazorpayConfig
	Donation   DonationConfig
	Forward    ForwardConfig
	Admin      AdminConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	Issuer        string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// RazorpayConfig holds the gateway keys. KeyID is safe to hand to the browser
// (the checkout widget needs it); KeySecret never leaves the server and doubles
// as the HMAC key for payment signature verification, per Razorpay's convention.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type DonationConfig struct {
	// RedirectBase is the default prefix for post-payment redirects:
	// <base>/success and <base>/failed.
	RedirectBase string
	// FeedHistory is how many recent donations the live feed replays to a
	// freshly connected client.
	FeedHistory int
}

// ForwardConfig configures where volunteer applications and contact messages
// are forwarded (e.g. a Google Sheets webhook). Empty URL disables forwarding.
type ForwardConfig struct {
	VolunteerWebhookURL string
	ContactWebhookURL   string
	Timeout             time.Duration
}

// AdminConfig seeds the first CMS admin account on startup.
type AdminConfig struct {
	Email    string
	Password string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getenv("DATABASE_DSN", "asha:asha@tcp(localhost:3306)/asha?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret:  getenv("JWT_ACCESS_SECRET", "change-me-in-production"),
			RefreshSecret: getenv("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiry:  time.Hour,
			RefreshExpiry: 168 * time.Hour,
			Issuer:        "asha",
		},
		OAuth: OAuthConfig{
			GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  getenv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
		Donation: DonationConfig{
			RedirectBase: getenv("DONATION_REDIRECT_BASE", "/donate"),
			FeedHistory:  getenvInt("DONATION_FEED_HISTORY", 20),
		},
		Forward: ForwardConfig{
			VolunteerWebhookURL: os.Getenv("VOLUNTEER_WEBHOOK_URL"),
			ContactWebhookURL:   os.Getenv("CONTACT_WEBHOOK_URL"),
			Timeout:             15 * time.Second,
		},
		Admin: AdminConfig{
			Email:    getenv("ADMIN_EMAIL", "admin@asha.org"),
			Password: getenv("ADMIN_PASSWORD", "change-me-admin"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
