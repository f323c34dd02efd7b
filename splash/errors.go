// CLAUDE:SUMMARY Typed errors for splash resolution: unsupported kind, resource not found, resource read failure.
package splash

import (
	"errors"
	"fmt"
)

// ErrUnknownUI is returned by lookups that require a registered UI.
var ErrUnknownUI = errors.New("splash: unknown ui")

// ErrUnsupportedKind is returned when a file name has none of the recognised
// extensions.
type ErrUnsupportedKind struct {
	File string
}

func (e *ErrUnsupportedKind) Error() string {
	return fmt.Sprintf("splash: unsupported file extension for: %s", e.File)
}

// ErrResourceNotFound is returned when a resource does not exist relative to
// its UI.
type ErrResourceNotFound struct {
	UI   string
	File string
}

func (e *ErrResourceNotFound) Error() string {
	return fmt.Sprintf("splash: couldn't find splash screen file %s for %s", e.File, e.UI)
}

// ErrResourceRead is returned when a resource exists but cannot be read or
// parsed.
type ErrResourceRead struct {
	UI    string
	File  string
	Cause error
}

func (e *ErrResourceRead) Error() string {
	return fmt.Sprintf("splash: couldn't read splash screen file %s for %s: %v", e.File, e.UI, e.Cause)
}

func (e *ErrResourceRead) Unwrap() error { return e.Cause }
