package maths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMat3() Mat3 {
	// rows: [2 0 1] [1 3 2] [1 1 1], stored column-major
	return Mat3{2, 1, 1, 0, 3, 1, 1, 2, 1}
}

func sampleMat4() Mat4 {
	return Mat4{
		1, 0, 2, 1,
		2, 1, 0, 0,
		0, 3, 1, 2,
		1, 0, 0, 1,
	}
}

func TestMat3Identity(t *testing.T) {
	m := sampleMat3()

	assert.Equal(t, m, m.Mul(Identity3()))
	assert.Equal(t, m, Identity3().Mul(m))
	assert.Equal(t, float32(1), Identity3().Determinant())
}

func TestMat3AtIsRowColumn(t *testing.T) {
	m := sampleMat3()

	assert.Equal(t, float32(0), m.At(0, 1))
	assert.Equal(t, float32(2), m.At(1, 2))
	assert.Equal(t, "(2, 0, 1,\n1, 3, 2,\n1, 1, 1)", m.String())
}

func TestMat3Determinant(t *testing.T) {
	// 2(3-2) - 0 + 1(1-3) = 0
	assert.Equal(t, float32(0), sampleMat3().Determinant())
	assert.Equal(t, float32(8), Identity3().Scale(2).Determinant())
}

func TestMat3Adjugate(t *testing.T) {
	m := Mat3{4, 2, 1, 7, 6, 3, 2, 5, 8}
	det := m.Determinant()

	assert.True(t, m.Mul(m.Adjugate()).Equal(Identity3().Scale(det)))
	assert.True(t, m.Adjugate().Mul(m).Equal(Identity3().Scale(det)))
}

func TestMat3Transpose(t *testing.T) {
	m := sampleMat3()

	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m.At(1, 2), m.Transpose().At(2, 1))
}

func TestMat3MulVec(t *testing.T) {
	assert.Equal(t, Vec3{3, 6, 3}, sampleMat3().MulVec(Vec3{1, 1, 1}))
}

func TestMat4Determinant(t *testing.T) {
	assert.Equal(t, float32(1), Identity4().Determinant())
	assert.Equal(t, float32(16), Identity4().Scale(2).Determinant())

	m := sampleMat4()
	assert.Equal(t, m.Determinant(), m.Transpose().Determinant())
}

func TestMat4Adjugate(t *testing.T) {
	m := sampleMat4()
	det := m.Determinant()

	assert.NotZero(t, det)
	assert.True(t, m.Mul(m.Adjugate()).Equal(Identity4().Scale(det)))
}

func TestMat4MulVec(t *testing.T) {
	v := Vec4{1, 2, 3, 4}

	assert.Equal(t, v, Identity4().MulVec(v))
	assert.Equal(t, v.Scale(2), Identity4().Scale(2).MulVec(v))
}

func TestMat4AddSub(t *testing.T) {
	m := sampleMat4()

	assert.Equal(t, m, m.Add(Identity4()).Sub(Identity4()))
	assert.True(t, m.Sub(m).Equal(Mat4{}))
}
