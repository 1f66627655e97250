// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect whether
// it was created through its designated constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// and the guarded object was not constructed through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard enforces that domain objects are only created through their
// constructor functions. The guard holds an internal flag that is only set by
// NewConstructorGuard, so any zero-value instance fails validation.
//
// Example:
//
//	var ErrShipmentNotConstructed = errors.New("Shipment must be created via NewManualShipment or NewAPIShipment")
//
//	type Shipment struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (s *Shipment) Validate() error {
//	    return s.guard.Validate(ErrShipmentNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
// Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. Zero-value objects
// receive validationError, or ErrDefaultConstructorGuard when it is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
