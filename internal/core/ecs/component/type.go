package component

import (
	"fmt"
	"sync"
)

// Type is a stable descriptor for a concrete component type. An entity holds at
// most one component per Type. The zero Type is never issued.
type Type uint32

var (
	typesMu   sync.RWMutex
	typeNames = []string{""}
	typeIndex = map[string]Type{}
)

// NewType issues the descriptor for a component type name. Call it once per
// concrete type, usually from a package-level var. Registering the same name
// twice panics.
func NewType(name string) Type {
	typesMu.Lock()
	defer typesMu.Unlock()

	if name == "" {
		panic("component: empty type name")
	}
	if _, exists := typeIndex[name]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicateType, name))
	}

	t := Type(len(typeNames))
	typeNames = append(typeNames, name)
	typeIndex[name] = t
	return t
}

// LookupType returns the descriptor registered under name.
func LookupType(name string) (Type, bool) {
	typesMu.RLock()
	defer typesMu.RUnlock()
	t, ok := typeIndex[name]
	return t, ok
}

func (t Type) String() string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	if t == 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("type(%d)", uint32(t))
	}
	return typeNames[t]
}

// Valid reports whether t was issued by NewType.
func (t Type) Valid() bool {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return t != 0 && int(t) < len(typeNames)
}
