package maths

import "fmt"

type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float32     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Length() float32        { return sqrt32(v.Dot(v)) }
func (v Vec2) Angle(o Vec2) float32   { return angle(v.Dot(o), v.Length(), o.Length()) }
func (v Vec2) Equal(o Vec2) bool      { return equal32(v.X, o.X) && equal32(v.Y, o.Y) }
func (v Vec2) Normalize() Vec2        { return normalize(v, v.Length(), v.Scale) }
func (v Vec2) Components() [2]float32 { return [2]float32{v.X, v.Y} }

func (v Vec2) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(v.X), formatFloat(v.Y))
}

type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3        { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3        { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3   { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float32     { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float32        { return sqrt32(v.Dot(v)) }
func (v Vec3) Angle(o Vec3) float32   { return angle(v.Dot(o), v.Length(), o.Length()) }
func (v Vec3) Normalize() Vec3        { return normalize(v, v.Length(), v.Scale) }
func (v Vec3) Components() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func (v Vec3) Equal(o Vec3) bool {
	return equal32(v.X, o.X) && equal32(v.Y, o.Y) && equal32(v.Z, o.Z)
}

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec4) Add(o Vec4) Vec4        { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }
func (v Vec4) Sub(o Vec4) Vec4        { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }
func (v Vec4) Scale(s float32) Vec4   { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4) Dot(o Vec4) float32     { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }
func (v Vec4) Length() float32        { return sqrt32(v.Dot(v)) }
func (v Vec4) Angle(o Vec4) float32   { return angle(v.Dot(o), v.Length(), o.Length()) }
func (v Vec4) Normalize() Vec4        { return normalize(v, v.Length(), v.Scale) }
func (v Vec4) Components() [4]float32 { return [4]float32{v.X, v.Y, v.Z, v.W} }

func (v Vec4) Equal(o Vec4) bool {
	return equal32(v.X, o.X) && equal32(v.Y, o.Y) && equal32(v.Z, o.Z) && equal32(v.W, o.W)
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z), formatFloat(v.W))
}

// normalize leaves zero-length vectors untouched.
func normalize[V any](v V, length float32, scale func(float32) V) V {
	if length == 0 {
		return v
	}
	return scale(1 / length)
}
