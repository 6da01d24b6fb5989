package maths

import (
	"fmt"
	"strings"
)

// Mat3 is a 3x3 matrix stored column-major: element (row r, column c) is at
// index c*3+r.
type Mat3 [9]float32

// Mat4 is a 4x4 matrix stored column-major: element (row r, column c) is at
// index c*4+r.
type Mat4 [16]float32

func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

func Identity4() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

func (m Mat3) At(row, col int) float32 { return m[col*3+row] }
func (m Mat4) At(row, col int) float32 { return m[col*4+row] }

func (m Mat3) Add(o Mat3) Mat3 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Mat3) Sub(o Mat3) Mat3 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m Mat3) Scale(s float32) Mat3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m × o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m.At(r, k) * o.At(k, c)
			}
			out[c*3+r] = sum
		}
	}
	return out
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m.At(r, c)
		}
	}
	return out
}

func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Adjugate returns the transpose of the cofactor matrix, so that
// m × m.Adjugate() == det(m) × I.
func (m Mat3) Adjugate() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			// adj(r, c) = cofactor(c, r)
			out[c*3+r] = m.cofactor(c, r)
		}
	}
	return out
}

func (m Mat3) cofactor(row, col int) float32 {
	var minor [4]float32
	i := 0
	for c := 0; c < 3; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 3; r++ {
			if r == row {
				continue
			}
			minor[i] = m.At(r, c)
			i++
		}
	}
	// minor is column-major 2x2: [a c; b d] stored as a, b, c, d.
	det := minor[0]*minor[3] - minor[2]*minor[1]
	if (row+col)%2 == 1 {
		return -det
	}
	return det
}

func (m Mat3) Equal(o Mat3) bool {
	for i := range m {
		if !equal32(m[i], o[i]) {
			return false
		}
	}
	return true
}

func (m Mat3) String() string {
	return formatMatrix(m[:], 3)
}

func (m Mat4) Add(o Mat4) Mat4 {
	for i := range m {
		m[i] += o[i]
	}
	return m
}

func (m Mat4) Sub(o Mat4) Mat4 {
	for i := range m {
		m[i] -= o[i]
	}
	return m
}

func (m Mat4) Scale(s float32) Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul returns m × o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(r, k) * o.At(k, c)
			}
			out[c*4+r] = sum
		}
	}
	return out
}

func (m Mat4) MulVec(v Vec4) Vec4 {
	in := v.Components()
	var out [4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r] += m.At(r, c) * in[c]
		}
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.At(r, c)
		}
	}
	return out
}

// Determinant expands along the first row.
func (m Mat4) Determinant() float32 {
	var det float32
	for c := 0; c < 4; c++ {
		det += m.At(0, c) * m.cofactor(0, c)
	}
	return det
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat4) Adjugate() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m.cofactor(c, r)
		}
	}
	return out
}

func (m Mat4) cofactor(row, col int) float32 {
	var minor Mat3
	i := 0
	for c := 0; c < 4; c++ {
		if c == col {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			minor[i] = m.At(r, c)
			i++
		}
	}
	det := minor.Determinant()
	if (row+col)%2 == 1 {
		return -det
	}
	return det
}

func (m Mat4) Equal(o Mat4) bool {
	for i := range m {
		if !equal32(m[i], o[i]) {
			return false
		}
	}
	return true
}

func (m Mat4) String() string {
	return formatMatrix(m[:], 4)
}

// formatMatrix prints row by row.
func formatMatrix(data []float32, n int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sb.WriteString(formatFloat(data[c*n+r]))
			if c < n-1 {
				sb.WriteString(", ")
			}
		}
		if r < n-1 {
			sb.WriteString(",\n")
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

var _ fmt.Stringer = Mat4{}
