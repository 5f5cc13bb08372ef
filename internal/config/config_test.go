package config

import (
	"testing"
	"time"
)

func TestMissingSMTPVars(t *testing.T) {
	cfg := &Config{
		SMTPUser:     "relay@example.com",
		SMTPPassword: "secret",
		ContactEmail: "owner@example.com",
	}
	if missing := cfg.MissingSMTPVars(); len(missing) != 0 {
		t.Fatalf("MissingSMTPVars() = %v, want none", missing)
	}

	cfg.SMTPPassword = ""
	cfg.ContactEmail = ""
	missing := cfg.MissingSMTPVars()
	if len(missing) != 2 {
		t.Fatalf("MissingSMTPVars() = %v, want 2 entries", missing)
	}
	want := map[string]bool{"SMTP_PASSWORD": true, "CONTACT_EMAIL": true}
	for _, name := range missing {
		if !want[name] {
			t.Errorf("unexpected missing var %q", name)
		}
	}
}

func TestMissingOptionalVars(t *testing.T) {
	cfg := &Config{SMTPFrom: "relay@example.com", SiteURL: "https://example.com"}
	if missing := cfg.MissingOptionalVars(); len(missing) != 0 {
		t.Fatalf("MissingOptionalVars() = %v, want none", missing)
	}

	cfg.SMTPFrom = ""
	if missing := cfg.MissingOptionalVars(); len(missing) != 1 || missing[0] != "SMTP_FROM" {
		t.Fatalf("MissingOptionalVars() = %v, want [SMTP_FROM]", missing)
	}
}

func TestFromAddressFallback(t *testing.T) {
	cfg := &Config{SMTPUser: "relay@example.com"}
	if got := cfg.FromAddress(); got != "relay@example.com" {
		t.Errorf("FromAddress() = %q, want authenticated user fallback", got)
	}

	cfg.SMTPFrom = "noreply@example.com"
	if got := cfg.FromAddress(); got != "noreply@example.com" {
		t.Errorf("FromAddress() = %q, want explicit from address", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("LOG_FILE", t.TempDir()+"/api.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SMTPPort != 465 || !cfg.SMTPSecure {
		t.Errorf("SMTP defaults = %d/%v, want 465/true", cfg.SMTPPort, cfg.SMTPSecure)
	}
	if cfg.RateLimitIPMax != 3 || cfg.RateLimitIPWindow != time.Hour {
		t.Errorf("IP limit defaults = %d/%v, want 3/1h", cfg.RateLimitIPMax, cfg.RateLimitIPWindow)
	}
	if cfg.RateLimitEmailMax != 36 || cfg.RateLimitEmailWindow != 24*time.Hour {
		t.Errorf("email limit defaults = %d/%v, want 36/24h", cfg.RateLimitEmailMax, cfg.RateLimitEmailWindow)
	}
	if cfg.MailTimeout != 30*time.Second {
		t.Errorf("MailTimeout = %v, want 30s", cfg.MailTimeout)
	}
}
