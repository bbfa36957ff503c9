package model

import (
	"errors"
	"fmt"
	"strings"
)

// Operation names the client call that failed
type Operation string

const (
	OpDownload Operation = "download"
	OpSearch   Operation = "search"
)

// ErrInvalidInput is matched by every InputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ClientError is the single failure shape returned by the ytdl client.
// Message holds the backend-supplied error when there was one, otherwise the
// transport-level description.
type ClientError struct {
	Op      Operation
	Format  Format // empty for search
	Message string
}

func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Op == OpSearch {
		return fmt.Sprintf("Search failed: %s", e.Message)
	}
	if e.Format != "" {
		return fmt.Sprintf("Failed to download %s: %s", strings.ToUpper(string(e.Format)), e.Message)
	}
	return fmt.Sprintf("Failed to download: %s", e.Message)
}

// IsClientError reports whether err carries a ClientError for op.
func IsClientError(err error, op Operation) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Op == op
	}
	return false
}

// InputError is raised by caller-side guards before anything is sent to the backend.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }
