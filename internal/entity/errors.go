package entity

import (
	"errors"
	"fmt"
)

var (
	// Auth errors
	ErrUnauthorized = errors.New("unauthorized access")

	// Configuration errors
	ErrNotConfigured = errors.New("background removal service not configured")
)

// ProviderError wraps any failure of the external background-removal call:
// transport errors, provider-side rejections, malformed responses. Only the
// human-readable message crosses the handler boundary.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("background removal provider: %s", e.Message)
}
