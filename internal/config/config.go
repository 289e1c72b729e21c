package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is built once at startup and injected read-only into the handlers.
// Missing integrations are recorded here instead of failing the process: the
// matching endpoint serves a fixed error response until the credential shows
// up, which keeps the independent flows independent.
type Config struct {
	Port string

	DatabaseURL string

	StripeSecretKey      string
	StripePublishableKey string

	EmailJS EmailJS

	SiteURL   string
	VercelURL string
}

// EmailJS holds the provider credentials for transactional email dispatch.
type EmailJS struct {
	ServiceID         string
	ContactTemplateID string
	ProjectTemplateID string
	PublicKey         string
}

func New() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:                 port,
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		EmailJS: EmailJS{
			ServiceID:         os.Getenv("EMAILJS_SERVICE_ID"),
			ContactTemplateID: os.Getenv("EMAILJS_CONTACT_TEMPLATE_ID"),
			ProjectTemplateID: os.Getenv("EMAILJS_PROJECT_TEMPLATE_ID"),
			PublicKey:         os.Getenv("EMAILJS_PUBLIC_KEY"),
		},
		SiteURL:   os.Getenv("SITE_URL"),
		VercelURL: os.Getenv("VERCEL_URL"),
	}
}

func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != ""
}

func (c *Config) StripeConfigured() bool {
	return c.StripeSecretKey != ""
}

// BaseURL resolves the redirect target base for checkout sessions: explicit
// site URL first, then the deployment URL the platform provides, then local
// development.
func (c *Config) BaseURL() string {
	if c.SiteURL != "" {
		return c.SiteURL
	}
	if c.VercelURL != "" {
		return "https://" + c.VercelURL
	}
	return "http://localhost:3000"
}

// Validate reports every missing EmailJS variable by name so a broken deploy
// is diagnosable from the first log line.
func (e EmailJS) Validate() error {
	var missing []string

	if e.ServiceID == "" {
		missing = append(missing, "EMAILJS_SERVICE_ID")
	}
	if e.ContactTemplateID == "" {
		missing = append(missing, "EMAILJS_CONTACT_TEMPLATE_ID")
	}
	if e.ProjectTemplateID == "" {
		missing = append(missing, "EMAILJS_PROJECT_TEMPLATE_ID")
	}
	if e.PublicKey == "" {
		missing = append(missing, "EMAILJS_PUBLIC_KEY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required EmailJS environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
