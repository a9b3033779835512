package anim

import (
	"errors"
	"fmt"
)

// Domain errors for animation operations.
var (
	// ErrInvalidInterval indicates a non-positive frame interval.
	ErrInvalidInterval = errors.New("anim: interval must be positive")

	// ErrIndexOutOfRange indicates a line index beyond the coordinator's line count.
	ErrIndexOutOfRange = errors.New("anim: line index out of range")

	// ErrModeNotFound indicates a custom mode name with no registration.
	ErrModeNotFound = errors.New("anim: mode not found")

	// ErrConstructionOnly indicates a collaborator option applied after
	// construction.
	ErrConstructionOnly = errors.New("anim: option only applies at construction time")
)

// RenderError wraps a renderer failure with the line it occurred on.
type RenderError struct {
	Line    int
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("anim: render failed on line %d: %v", e.Line, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}
