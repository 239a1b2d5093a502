// Package guard detects value objects that were declared as zero values instead of
// going through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands and queries. Only NewConstructorGuard
// sets the flag, so a zero-value struct fails Validate.
//
// Example:
//
//	type GetOrderQuery struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (q GetOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
