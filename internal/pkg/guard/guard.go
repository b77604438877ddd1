// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so code can refuse to operate on objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied and the object was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is "not constructed"; only NewConstructorGuard produces a
// guard that passes validation. Domain objects embed the guard privately and
// expose a Validate method that forwards to it.
//
// Example:
//
//	type Rating struct {
//	    score int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRating(score int) (Rating, error) {
//	    if score < 1 || score > 5 {
//	        return Rating{}, errors.New("score must be between 1 and 5")
//	    }
//	    return Rating{score: score, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rating) Validate() error {
//	    return r.guard.Validate(ErrRatingIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the "constructed" state.
// Call it only from the owning object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object went through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
