// Package guard provides the constructor-guard pattern used by domain objects
// to reject zero-value instances that bypassed their factory functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its constructor.
// Embed it as a field and initialize it with NewConstructorGuard; the zero value
// fails validation, which makes directly-instantiated structs detectable.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
