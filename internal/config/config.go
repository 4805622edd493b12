package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "diaspora-salon-development-secret"

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentPath() string
	GetContentWatch() bool
	GetSubmitDelay() time.Duration
	GetAutoCloseDelay() time.Duration
	GetVisitorTTL() time.Duration
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetConciergeEmail() string
	GetInquiryJournalPath() string
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr         string
	AppBaseURL         string
	SessionSecret      string
	ContentPath        string
	ContentWatch       bool
	SubmitDelay        time.Duration
	AutoCloseDelay     time.Duration
	VisitorTTL         time.Duration
	EmailProvider      string
	EmailAPIKey        string
	EmailSender        string
	ConciergeEmail     string
	InquiryJournalPath string
	TracingEnabled     bool
	TracingServiceName string
	TracingZipkinURL   string
}

// New loads configuration from environment variables, reading a .env file
// first when one exists.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:      getEnv("SESSION_SECRET", devSessionSecret),
		ContentPath:        os.Getenv("CONTENT_PATH"),
		EmailProvider:      getEnv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:        os.Getenv("EMAIL_API_KEY"),
		EmailSender:        getEnv("EMAIL_SENDER", "Diaspora Salon <concierge@diasporasalon.com>"),
		ConciergeEmail:     getEnv("CONCIERGE_EMAIL", "concierge@diasporasalon.com"),
		InquiryJournalPath: os.Getenv("INQUIRY_JOURNAL_PATH"),
		TracingServiceName: getEnv("TRACING_SERVICE_NAME", "diaspora-salon"),
		TracingZipkinURL:   getEnv("TRACING_ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}

	var err error
	if cfg.ContentWatch, err = getBool("CONTENT_WATCH", false); err != nil {
		return nil, err
	}
	if cfg.TracingEnabled, err = getBool("TRACING_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.SubmitDelay, err = getDuration("BOOKING_SUBMIT_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.AutoCloseDelay, err = getDuration("BOOKING_AUTOCLOSE_DELAY", 2000*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.VisitorTTL, err = getDuration("VISITOR_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	if cfg.SessionSecret == devSessionSecret {
		log.Println("SESSION_SECRET is not set, using the development secret")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, v)
	}
	return d, nil
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetContentPath() string           { return c.ContentPath }
func (c *Config) GetContentWatch() bool            { return c.ContentWatch }
func (c *Config) GetSubmitDelay() time.Duration    { return c.SubmitDelay }
func (c *Config) GetAutoCloseDelay() time.Duration { return c.AutoCloseDelay }
func (c *Config) GetVisitorTTL() time.Duration     { return c.VisitorTTL }
func (c *Config) GetEmailProvider() string         { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string           { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string           { return c.EmailSender }
func (c *Config) GetConciergeEmail() string        { return c.ConciergeEmail }
func (c *Config) GetInquiryJournalPath() string    { return c.InquiryJournalPath }
func (c *Config) GetTracingEnabled() bool          { return c.TracingEnabled }
func (c *Config) GetTracingServiceName() string    { return c.TracingServiceName }
func (c *Config) GetTracingZipkinURL() string      { return c.TracingZipkinURL }
