// Package apperrors defines sentinel errors shared across the engine.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a required entity lookup matched no row.
	// Optional relations (an idea without an edge, a project without a
	// linked idea) are represented as absent values, not as this error.
	ErrNotFound = errors.New("not found")
)

// UpstreamError wraps a failed read against the external entity store.
// Compositions are all-or-nothing: an UpstreamError from any contributing
// read aborts the whole composition and propagates to the caller unchanged.
type UpstreamError struct {
	Collection string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("entity store read failed for %q: %v", e.Collection, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream wraps err as an UpstreamError for the given collection.
// Returns nil if err is nil.
func Upstream(collection string, err error) error {
	if err == nil {
		return nil
	}
	return &UpstreamError{Collection: collection, Err: err}
}
