package service

import "errors"

// Sentinel errors for the mail dispatcher. The request handler classifies
// failures with errors.Is to pick the response code: configuration problems
// need operator intervention, transport problems are retriable by the user.
var (
	ErrMailNotConfigured = errors.New("mail transport not configured")
	ErrMailAuth          = errors.New("mail transport authentication failed")
	ErrMailUnavailable   = errors.New("mail transport unavailable")
)
