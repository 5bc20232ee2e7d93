// =======================
// donut/vector.go
// =======================

package donut

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 holds a 3D coordinate or direction.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len() float64         { return math.Sqrt(v.Dot(v)) }
func (v Vec3) String() string       { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }

func (v Vec3) mgl() mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromMgl(v mgl64.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// Axis selects an elemental rotation.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// matrix returns the right-handed rotation matrix about a by angle.
func (a Axis) matrix(angle float64) mgl64.Mat3 {
	switch a {
	case AxisX:
		return mgl64.Rotate3DX(angle)
	case AxisY:
		return mgl64.Rotate3DY(angle)
	case AxisZ:
		return mgl64.Rotate3DZ(angle)
	}
	panic(fmt.Sprintf("donut: unknown axis %d", int(a)))
}

// Rotate rotates v about axis by angle radians.
func Rotate(axis Axis, angle float64, v Vec3) Vec3 {
	return fromMgl(axis.matrix(angle).Mul3x1(v.mgl()))
}

// Rotation is a single elemental rotation.
type Rotation struct {
	Axis  Axis
	Angle float64
}

// Transform is an ordered list of elemental rotations. Order matters:
// X then Y then Z is not the same as Z then Y then X.
type Transform []Rotation

// Apply rotates v by every rotation of t in order. It never translates.
func (t Transform) Apply(v Vec3) Vec3 {
	for _, r := range t {
		v = Rotate(r.Axis, r.Angle, v)
	}
	return v
}

// Compose applies t to v.
func Compose(t Transform, v Vec3) Vec3 { return t.Apply(v) }

// Normalize returns v scaled to unit length. A zero vector has no
// direction and yields a *DegenerateVectorError.
func Normalize(v Vec3) (Vec3, error) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}, &DegenerateVectorError{Vector: v}
	}
	return fromMgl(v.mgl().Mul(1 / l)), nil
}

// Orientation holds the global rotation angles about X, Y and Z.
type Orientation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Transform returns the X, Y, Z rotation sequence for o.
func (o Orientation) Transform() Transform {
	return Transform{
		{Axis: AxisX, Angle: o.X},
		{Axis: AxisY, Angle: o.Y},
		{Axis: AxisZ, Angle: o.Z},
	}
}
