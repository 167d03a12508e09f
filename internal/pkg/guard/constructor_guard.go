// Package guard provides the constructor guard pattern used by domain objects
// to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its designated
// constructor. Embed it as a private field and set it with NewConstructorGuard
// inside the constructor; the zero value then fails Validate.
//
// Example:
//
//	type Manifest struct {
//	    items []ManifestItem
//	    guard guard.ConstructorGuard
//	}
//
//	func NewManifest(items []ManifestItem) (Manifest, error) {
//	    // validation...
//	    return Manifest{items: items, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Manifest) Validate() error {
//	    return m.guard.Validate(ErrManifestIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
