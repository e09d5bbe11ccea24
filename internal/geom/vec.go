package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a point or direction in screen or canvas space.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a point or direction in world space.
type Vec3 struct {
	X, Y, Z float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Length() float64 { return math.Hypot(a.X, a.Y) }
func (a Vec2) IsZero() bool { return a.X == 0 && a.Y == 0 }
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Normalize returns a unit vector in the direction of a, or the zero
// vector when a is shorter than epsilon.
func (a Vec2) Normalize() Vec2 {
	l := a.Length()
	if l < epsilon {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Mirror reflects a through c.
func (a Vec2) Mirror(c Vec2) Vec2 {
	return Vec2{2*c.X - a.X, 2*c.Y - a.Y}
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Length() float64 { return math.Sqrt(a.Dot(a)) }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < epsilon {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}

// XY drops the depth component.
func (a Vec3) XY() Vec2 { return Vec2{a.X, a.Y} }

const epsilon = 1e-5

func Clamp[T constraints.Ordered](x, low, high T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

func Clamp01(x float64) float64 { return Clamp(x, 0, 1) }

// MoveTowards advances cur toward target by at most maxDelta.
func MoveTowards(cur, target, maxDelta float64) float64 {
	if math.Abs(target-cur) <= maxDelta {
		return target
	}
	if target > cur {
		return cur + maxDelta
	}
	return cur - maxDelta
}

// Degrees converts radians to degrees.
func Degrees(r float64) float64 { return r * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(d float64) float64 { return d * math.Pi / 180 }

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}
