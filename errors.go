package yamldoc

import (
	"errors"
	"fmt"

	"github.com/zuhlke/go-yamldoc/internal/marshaler"
)

// ErrMalformedDocument is returned, wrapped in a *MalformedDocumentError,
// when a builder scope cannot be turned into a node.
var ErrMalformedDocument = errors.New("yamldoc: malformed document")

// MalformedDocumentError describes a builder misuse: a scope that mixes key
// bindings with bare items, an empty scope, a comment without a statement to
// attach to, or a duplicate key.
type MalformedDocumentError struct {
	// Path locates the offending scope, e.g. "runs.steps[0]".
	// It is empty for the root scope.
	Path   string
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("yamldoc: malformed document at %s: %s", path, e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error { return ErrMalformedDocument }

func malformed(path, format string, args ...any) error {
	return &MalformedDocumentError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// A MarshalerError represents an error from converting a Go value into a
// node, including errors returned by a MarshalDocument method.
type MarshalerError = marshaler.Error
