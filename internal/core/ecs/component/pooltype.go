package component

import (
	"fmt"
	"strings"
)

// PoolType tags a category of system interested in a set of components.
type PoolType uint8

const (
	PoolRender PoolType = iota + 1
	PoolCollision
	PoolPhysics
	PoolTest
)

// PoolTypes lists every valid pool type in declaration order.
var PoolTypes = []PoolType{PoolRender, PoolCollision, PoolPhysics, PoolTest}

func (p PoolType) String() string {
	switch p {
	case PoolRender:
		return "render"
	case PoolCollision:
		return "collision"
	case PoolPhysics:
		return "physics"
	case PoolTest:
		return "test"
	default:
		return fmt.Sprintf("pool(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the declared pool types.
func (p PoolType) Valid() bool {
	return p >= PoolRender && p <= PoolTest
}

// ParsePoolType is the inverse of PoolType.String, case-insensitive.
func ParsePoolType(s string) (PoolType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range PoolTypes {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPoolType, s)
}

func (p PoolType) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPoolType, uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *PoolType) UnmarshalText(text []byte) error {
	parsed, err := ParsePoolType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
