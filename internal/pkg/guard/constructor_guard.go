// Package guard provides a small defensive-programming helper that lets domain
// objects detect whether they were created through their designated constructor
// or left as a zero value.
//
// Embedding a ConstructorGuard in a struct and checking it from the struct's
// Validate method ensures that invariants established by the constructor cannot
// be bypassed with a struct literal. This is the construction discipline every
// value object, entity, command, and query in this module follows.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller did not
// supply a more specific error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// reports the object as not constructed, so any struct that embeds a guard and
// is created without its constructor fails validation.
//
// Example:
//
//	type OrderNo struct {
//	    id    string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrderNo(id string) (OrderNo, error) {
//	    if id == "" {
//	        return OrderNo{}, errs.NewValueIsRequiredError("id")
//	    }
//	    return OrderNo{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (n OrderNo) Validate() error {
//	    return n.guard.Validate(ErrOrderNoIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
// Call it only from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was properly constructed. Otherwise it
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
