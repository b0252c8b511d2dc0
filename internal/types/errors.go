package types

import "errors"

var (
	// ErrNotFound indicates a destination id with no catalog entry.
	// Callers treat it as recoverable and show the not-found view.
	ErrNotFound = errors.New("resource not found")
	// ErrAIUnavailable indicates the generative AI collaborator cannot be
	// reached, typically because the API key is not configured. Permanent;
	// never retried.
	ErrAIUnavailable = errors.New("generative AI service unavailable")
	// ErrMalformedAIResponse indicates the collaborator answered but the
	// response could not be parsed into the expected shape.
	ErrMalformedAIResponse = errors.New("malformed AI response")
)
