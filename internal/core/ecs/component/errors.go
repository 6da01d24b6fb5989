package component

import "errors"

var (
	ErrUnknownPoolType = errors.New("unknown pool type")
	ErrDuplicateType   = errors.New("component type already registered")
	ErrInvariant       = errors.New("component pool invariant violated")
)
