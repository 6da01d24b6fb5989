// Package maths provides the small vector and matrix value types components are
// built from. All types are plain values: methods never mutate the receiver.
package maths

import (
	"math"
	"strconv"
)

// canonical folds negative zero to zero so that equality and formatting agree
// with how components compare floats.
func canonical(f float32) float32 {
	if f == 0 {
		return 0
	}
	return f
}

func equal32(a, b float32) bool {
	a, b = canonical(a), canonical(b)
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}
	return a == b
}

// formatFloat renders f without a trailing ".0" for whole numbers.
func formatFloat(f float32) string {
	f = canonical(f)
	if f == float32(math.Trunc(float64(f))) && math.Abs(float64(f)) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}

// angle returns the angle in radians between two vectors given their dot
// product and lengths, clamped against rounding outside [-1, 1].
func angle(dot, lenA, lenB float32) float32 {
	if lenA == 0 || lenB == 0 {
		return float32(math.NaN())
	}
	cos := float64(dot / (lenA * lenB))
	cos = math.Max(-1, math.Min(1, cos))
	return float32(math.Acos(cos))
}
