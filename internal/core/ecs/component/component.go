package component

import "reflect"

// Component is a value attached to an entity. Concrete types are usually
// pointers to plain structs and must keep PoolTypes fixed for the lifetime of
// the type.
type Component interface {
	// Type identifies the concrete component type.
	Type() Type
	// PoolTypes lists the pools this component joins. The slice is shared and
	// must not be modified by callers.
	PoolTypes() []PoolType
	// Equal reports structural equality: same Type and equal fields.
	Equal(other Component) bool
	// Hash must agree with Equal.
	Hash() uint64
	// Clone returns a deep copy that shares no mutable state with the receiver.
	Clone() Component
}

// IsNil reports whether c is nil or a typed nil pointer wrapped in the interface.
func IsNil(c Component) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Declares reports whether c lists pool type p.
func Declares(c Component, p PoolType) bool {
	for _, declared := range c.PoolTypes() {
		if declared == p {
			return true
		}
	}
	return false
}

// Equal compares two possibly nil components.
func Equal(a, b Component) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil == bNil
	}
	return a.Type() == b.Type() && a.Equal(b)
}
