// Package guard detects zero-value commands and queries that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies
// no error of its own.
var ErrDefaultConstructorGuard = errors.New("not constructed: use the constructor function")

// ConstructorGuard distinguishes an object built by its NewX constructor from
// a zero value. Commands and queries embed one unexported guard field; since
// the field cannot be set from outside the package, the only way to obtain a
// passing guard is to go through the constructor and its argument checks.
//
//	type Command struct {
//	    orderID string
//	    guard   ConstructorGuard
//	}
//
//	func NewCommand(orderID string) (Command, error) {
//	    if orderID == "" {
//	        return Command{}, errs.NewValueIsRequiredError("orderID")
//	    }
//	    return Command{orderID: orderID, guard: NewConstructorGuard()}, nil
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes Validate. Called only from
// constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError for a zero
// value. A nil validationError falls back to ErrDefaultConstructorGuard so
// the failure is never silent.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
