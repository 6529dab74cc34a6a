// Package guard provides ConstructorGuard, a marker embedded in aggregates and
// command objects so that zero values built with a struct literal are rejected
// by Validate.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built through a constructor.
//
// Example:
//
//	type CancelOrderCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c CancelOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
