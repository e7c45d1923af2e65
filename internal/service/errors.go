package service

import "fmt"

// ChatServiceError is a domain-level failure carrying a client-safe message
// and structured details.
type ChatServiceError struct {
	Message string
	Details map[string]any
}

func (e *ChatServiceError) Error() string { return e.Message }

// LanguageNotSupportedError is reserved for strict validation paths. The
// documented chat routes never raise it: normalization falls back to the
// default language instead.
type LanguageNotSupportedError struct {
	Language string
}

func (e *LanguageNotSupportedError) Error() string {
	return fmt.Sprintf("language %q is not supported", e.Language)
}

// ModelError wraps any upstream failure from the generation provider
// (transport, auth, malformed response). The wrapped detail is for server
// logs only and must not reach clients.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string { return "model generation failed: " + e.Err.Error() }

func (e *ModelError) Unwrap() error { return e.Err }
