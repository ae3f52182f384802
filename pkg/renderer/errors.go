package renderer

import "github.com/pkg/errors"

var (
	// ErrAbort may be returned by an Output to stop rendering early.
	// Render treats it as a clean stop rather than a failure.
	ErrAbort = errors.New("render aborted by output")

	ErrInvalidConfig = errors.New("invalid renderer config")
)
