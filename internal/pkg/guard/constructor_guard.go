// Package guard provides a defensive programming pattern that ensures domain
// objects are only created through their designated constructor functions.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so validation can reject objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its constructor.
// The zero value fails validation, which lets Validate methods distinguish a
// properly constructed object from a bare struct literal.
//
// Example usage:
//
//	var ErrCommandNotConstructed = errors.New("Command must be created via NewCommand")
//
//	type Command struct {
//	    payload string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCommand(payload string) (Command, error) {
//	    if payload == "" {
//	        return Command{}, errors.New("payload is required")
//	    }
//	    return Command{payload: payload, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for constructed objects. For zero-value objects it returns the
// provided validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
