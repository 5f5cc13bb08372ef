package validation

import (
	"regexp"
	"strings"

	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/common"
	"github.com/Sihle-Thwa/PortfolioV2/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
)

var (
	// Conservative email shape: ordinary local parts and dotted domain labels.
	// Deliberately not full RFC 5322.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Letters (including diacritics), spaces, hyphens and apostrophes.
	nameRegex = regexp.MustCompile(`^[\p{L} '-]+$`)
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("contact_name", validateName)
	v.RegisterValidation("contact_email", validateEmail)
}

func validateName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// ContactValidator validates and normalizes contact form submissions
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator creates a validator with the custom rules registered
func NewContactValidator() *ContactValidator {
	v := validator.New()
	RegisterValidators(v)
	return &ContactValidator{validate: v}
}

// Validate normalizes the raw request and checks every field constraint.
// It reports all violations at once rather than stopping at the first, so
// the caller gets one round-trip per form attempt.
func (cv *ContactValidator) Validate(req contact.ContactRequest) (contact.Submission, []common.Issue) {
	sub := contact.Submission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
	}

	err := cv.validate.Struct(sub)
	if err == nil {
		return sub, nil
	}

	return sub, formatIssues(err)
}

// formatIssues maps validator errors to user-facing field issues
func formatIssues(err error) []common.Issue {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []common.Issue{{Field: "", Message: err.Error()}}
	}

	issues := make([]common.Issue, 0, len(validationErrors))
	for _, e := range validationErrors {
		issues = append(issues, common.Issue{
			Field:   strings.ToLower(e.StructField()),
			Message: issueMessage(e.StructField(), e.Tag()),
		})
	}
	return issues
}

func issueMessage(field, tag string) string {
	switch field {
	case "Name":
		switch tag {
		case "required", "min":
			return "Name must be at least 2 characters"
		case "max":
			return "Name must be less than 50 characters"
		default:
			return "Name can only contain letters and spaces"
		}
	case "Email":
		switch tag {
		case "required":
			return "Email is required"
		case "max":
			return "Email must be less than 254 characters"
		default:
			return "Invalid email address"
		}
	case "Message":
		switch tag {
		case "required", "min":
			return "Message must be at least 10 characters"
		case "max":
			return "Message must be less than 1000 characters"
		default:
			return "Invalid message"
		}
	}
	return "Invalid value"
}
