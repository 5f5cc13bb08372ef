package contact

// ContactRequest represents the raw contact form payload. Validation happens
// on the normalized Submission, not here, so that all field issues can be
// reported in a single pass.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submission is the normalized form of a contact request: fields trimmed,
// email lower-cased. It exists only for the lifetime of one request.
type Submission struct {
	Name    string `validate:"required,min=2,max=50,contact_name"`
	Email   string `validate:"required,max=254,contact_email"`
	Message string `validate:"required,min=10,max=1000"`
}
