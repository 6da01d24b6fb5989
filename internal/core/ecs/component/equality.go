package component

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalNaN is the single NaN bit pattern all NaNs fold to.
var canonicalNaN = math.Float32frombits(0x7fc00000)

// NormalizeFloat32 folds negative zero to zero and every NaN to one bit pattern.
func NormalizeFloat32(f float32) float32 {
	switch {
	case math.IsNaN(float64(f)):
		return canonicalNaN
	case f == 0:
		return 0
	default:
		return f
	}
}

// NormalizeFloat64 narrows f to float32 precision before normalizing, so values
// that differ only beyond float32 precision compare equal.
func NormalizeFloat64(f float64) float32 {
	return NormalizeFloat32(float32(f))
}

// Float32Equal compares normalized bit patterns: -0 == 0 and NaN == NaN.
func Float32Equal(a, b float32) bool {
	return math.Float32bits(NormalizeFloat32(a)) == math.Float32bits(NormalizeFloat32(b))
}

func Float64Equal(a, b float64) bool {
	return math.Float32bits(NormalizeFloat64(a)) == math.Float32bits(NormalizeFloat64(b))
}

// Hasher accumulates component fields into an xxhash digest. Floats are
// normalized the same way Float32Equal compares them.
type Hasher struct {
	digest *xxhash.Digest
	buf    [8]byte
}

// NewHasher seeds the digest with the component type so equal field values of
// different types hash apart.
func NewHasher(t Type) *Hasher {
	h := &Hasher{digest: xxhash.New()}
	return h.Uint32(uint32(t))
}

func (h *Hasher) Float32(f float32) *Hasher {
	return h.Uint32(math.Float32bits(NormalizeFloat32(f)))
}

func (h *Hasher) Float64(f float64) *Hasher {
	return h.Uint32(math.Float32bits(NormalizeFloat64(f)))
}

func (h *Hasher) Uint32(v uint32) *Hasher {
	binary.LittleEndian.PutUint32(h.buf[:4], v)
	_, _ = h.digest.Write(h.buf[:4])
	return h
}

func (h *Hasher) Uint64(v uint64) *Hasher {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.digest.Write(h.buf[:])
	return h
}

func (h *Hasher) Int(v int) *Hasher {
	return h.Uint64(uint64(int64(v)))
}

func (h *Hasher) Bool(v bool) *Hasher {
	if v {
		return h.Uint32(1)
	}
	return h.Uint32(0)
}

// String writes the length first so adjacent strings cannot collide by shifting
// bytes between them.
func (h *Hasher) String(s string) *Hasher {
	h.Uint32(uint32(len(s)))
	_, _ = h.digest.WriteString(s)
	return h
}

func (h *Hasher) Sum64() uint64 {
	return h.digest.Sum64()
}

// CombineUnordered mixes element hashes independently of iteration order, for
// map-shaped values such as an entity's component set.
func CombineUnordered(seed uint64, hashes ...uint64) uint64 {
	var sum, xor uint64
	for _, h := range hashes {
		sum += h
		xor ^= h
	}
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], seed)
	binary.LittleEndian.PutUint64(buf[8:16], sum)
	binary.LittleEndian.PutUint64(buf[16:24], xor)
	return xxhash.Sum64(buf[:])
}
