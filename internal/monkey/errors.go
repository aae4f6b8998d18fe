package monkey

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("monkey not found")

	// ErrInvalidName is returned for empty or whitespace-only lookups. It wraps
	// ErrNotFound so callers that only care about presence can check one error.
	ErrInvalidName = fmt.Errorf("invalid monkey name: %w", ErrNotFound)

	ErrEmptyCatalog = fmt.Errorf("catalog is empty: %w", ErrNotFound)

	ErrRemoteUnavailable = errors.New("remote species feed is not available")
)
