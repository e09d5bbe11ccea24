package geom

import "math"

// Rect is an axis-aligned rectangle given by its minimum and maximum
// corners.
type Rect struct {
	Min, Max Vec2
}

// RectFromPoints returns the smallest Rect that contains all of pts.
func RectFromPoints(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// ScreenRect returns the rect spanning (0,0)-(w,h).
func ScreenRect(w, h float64) Rect {
	return Rect{Max: Vec2{w, h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// ContainsStrict reports whether p lies strictly inside r; points on the
// edges are outside.
func (r Rect) ContainsStrict(p Vec2) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Inset shrinks r by d on every side. An axis that would invert collapses
// onto its midpoint.
func (r Rect) Inset(d float64) Rect {
	c := r.Center()
	out := Rect{Min: Vec2{r.Min.X + d, r.Min.Y + d}, Max: Vec2{r.Max.X - d, r.Max.Y - d}}
	if out.Min.X > out.Max.X {
		out.Min.X, out.Max.X = c.X, c.X
	}
	if out.Min.Y > out.Max.Y {
		out.Min.Y, out.Max.Y = c.Y, c.Y
	}
	return out
}

// ClosestPoint clamps p into r. (If p is already inside it, then it is
// returned.)
func (r Rect) ClosestPoint(p Vec2) Vec2 {
	return Vec2{Clamp(p.X, r.Min.X, r.Max.X), Clamp(p.Y, r.Min.Y, r.Max.Y)}
}

// ExitRay returns the smallest positive parametric distance t at which the
// ray org + t*dir reaches one of the edges of r. Axes with a zero direction
// component are skipped. The Boolean result is false when no edge is hit.
func (r Rect) ExitRay(org, dir Vec2) (float64, bool) {
	t := math.Inf(1)
	if dir.X != 0 {
		for _, edge := range [2]float64{r.Min.X, r.Max.X} {
			if tx := (edge - org.X) / dir.X; tx > 0 && tx < t {
				t = tx
			}
		}
	}
	if dir.Y != 0 {
		for _, edge := range [2]float64{r.Min.Y, r.Max.Y} {
			if ty := (edge - org.Y) / dir.Y; ty > 0 && ty < t {
				t = ty
			}
		}
	}
	if math.IsInf(t, 1) {
		return 0, false
	}
	return t, true
}
