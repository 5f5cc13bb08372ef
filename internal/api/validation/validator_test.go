package validation

import (
	"strings"
	"testing"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/v1/contact"
)

func validRequest() contact.ContactRequest {
	return contact.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, I would like to collaborate!",
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"simple", "Jane Doe", true},
		{"diacritics", "José Álvarez", true},
		{"hyphen and apostrophe", "Anne-Marie O'Neill", true},
		{"too short", "A", false},
		{"too long", strings.Repeat("a", 51), false},
		{"digits", "Jane42", false},
		{"symbols", "Jane <script>", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	cv := NewContactValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Name = tt.value
			_, issues := cv.Validate(req)
			if got := len(issues) == 0; got != tt.want {
				t.Errorf("Validate(name=%q) ok = %v, want %v (issues: %v)", tt.value, got, tt.want, issues)
			}
			for _, issue := range issues {
				if issue.Field != "name" {
					t.Errorf("unexpected issue field %q", issue.Field)
				}
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain", "jane@example.com", true},
		{"subdomain", "jane@mail.example.co.uk", true},
		{"plus tag", "jane+tag@example.com", true},
		{"no at", "bad-email", false},
		{"no tld", "jane@example", false},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 250) + "@example.com", false},
	}

	cv := NewContactValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Email = tt.value
			_, issues := cv.Validate(req)
			if got := len(issues) == 0; got != tt.want {
				t.Errorf("Validate(email=%q) ok = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"ok", "Hello, I would like to collaborate!", true},
		{"min boundary", "1234567890", true},
		{"max boundary", strings.Repeat("a", 1000), true},
		{"too short", "hi", false},
		{"too long", strings.Repeat("a", 1001), false},
		{"whitespace only", strings.Repeat(" ", 20), false},
	}

	cv := NewContactValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Message = tt.value
			_, issues := cv.Validate(req)
			if got := len(issues) == 0; got != tt.want {
				t.Errorf("Validate(message len=%d) ok = %v, want %v", len(tt.value), got, tt.want)
			}
		})
	}
}

func TestAllIssuesReportedTogether(t *testing.T) {
	cv := NewContactValidator()
	_, issues := cv.Validate(contact.ContactRequest{
		Name:    "A",
		Email:   "bad-email",
		Message: "hi",
	})

	if len(issues) != 3 {
		t.Fatalf("got %d issues, want 3: %v", len(issues), issues)
	}

	fields := map[string]bool{}
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	for _, want := range []string{"name", "email", "message"} {
		if !fields[want] {
			t.Errorf("missing issue for field %q", want)
		}
	}
}

func TestNormalization(t *testing.T) {
	cv := NewContactValidator()
	sub, issues := cv.Validate(contact.ContactRequest{
		Name:    "  Jane Doe  ",
		Email:   " JANE@Example.com ",
		Message: "  Hello, I would like to collaborate!  ",
	})

	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if sub.Email != "jane@example.com" {
		t.Errorf("Email = %q, want lower-cased and trimmed", sub.Email)
	}
	if sub.Name != "Jane Doe" {
		t.Errorf("Name = %q, want trimmed", sub.Name)
	}
	if sub.Message != "Hello, I would like to collaborate!" {
		t.Errorf("Message = %q, want trimmed", sub.Message)
	}
}
