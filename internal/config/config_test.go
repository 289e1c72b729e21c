package config

import (
	"os"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := New()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DatabaseConfigured() {
		t.Errorf("expected database to be unconfigured")
	}
	if cfg.StripeConfigured() {
		t.Errorf("expected stripe to be unconfigured")
	}
}

func TestNew_ReadsEnvironment(t *testing.T) {
	os.Clearenv()
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/axios")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("EMAILJS_SERVICE_ID", "service_abc")

	cfg := New()

	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %q", cfg.Port)
	}
	if !cfg.DatabaseConfigured() {
		t.Errorf("expected database to be configured")
	}
	if !cfg.StripeConfigured() {
		t.Errorf("expected stripe to be configured")
	}
	if cfg.EmailJS.ServiceID != "service_abc" {
		t.Errorf("expected service_abc, got %q", cfg.EmailJS.ServiceID)
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		siteURL   string
		vercelURL string
		want      string
	}{
		{"explicit site url wins", "https://axiosinnovations.com", "deploy-abc.vercel.app", "https://axiosinnovations.com"},
		{"deployment url gets https scheme", "", "deploy-abc.vercel.app", "https://deploy-abc.vercel.app"},
		{"local development fallback", "", "", "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SiteURL: tt.siteURL, VercelURL: tt.vercelURL}
			if got := cfg.BaseURL(); got != tt.want {
				t.Errorf("BaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmailJSValidate(t *testing.T) {
	valid := EmailJS{
		ServiceID:         "service_abc",
		ContactTemplateID: "template_contact",
		ProjectTemplateID: "template_project",
		PublicKey:         "public_key",
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missingTwo := EmailJS{ServiceID: "service_abc", PublicKey: "public_key"}
	err := missingTwo.Validate()
	if err == nil {
		t.Fatalf("expected error for missing template ids")
	}
	for _, name := range []string{"EMAILJS_CONTACT_TEMPLATE_ID", "EMAILJS_PROJECT_TEMPLATE_ID"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected error to name %s, got %q", name, err.Error())
		}
	}
	if strings.Contains(err.Error(), "EMAILJS_SERVICE_ID") {
		t.Errorf("error should not name present variables: %q", err.Error())
	}
}
