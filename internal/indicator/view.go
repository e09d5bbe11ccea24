package indicator

import (
	"math"

	"github.com/spacehole-rogue/starmap/internal/geom"
)

// Smallest arrow rotation change, in degrees, that is passed on to the
// surface.
const minRotationDelta = 0.01

// View is the presentation side of an indicator. It holds no decision
// logic: the Controller tells it what to show and it forwards that to its
// Surface, skipping redundant rotation and label writes.
type View struct {
	surface Surface

	active     bool
	position   geom.Vec2
	scale      float64
	icon       string
	alpha      float64
	arrowOn    bool
	rotation   float64
	rotationOK bool
	labelOn    bool
	label      string

	// visibilityAlpha is storage for the controller's smoothed opacity.
	visibilityAlpha float64
}

// NewView wraps s. The view starts hidden and fully transparent.
func NewView(s Surface) *View {
	v := &View{surface: s, scale: 1}
	s.SetVisible(false)
	s.SetAlpha(0)
	s.SetArrowVisible(false)
	s.SetLabelVisible(false)
	return v
}

func (v *View) SetActive(on bool) {
	v.active = on
	v.surface.SetVisible(on)
}

func (v *View) Active() bool { return v.active }

func (v *View) SetPosition(p geom.Vec2) {
	v.position = p
	v.surface.SetPosition(p)
}

func (v *View) Position() geom.Vec2 { return v.position }

func (v *View) SetScale(s float64) {
	v.scale = s
	v.surface.SetScale(s)
}

func (v *View) Scale() float64 { return v.scale }

func (v *View) SetIcon(icon string) {
	v.icon = icon
	v.surface.SetIcon(icon)
}

func (v *View) Icon() string { return v.icon }

func (v *View) SetAlpha(a float64) {
	v.alpha = a
	v.surface.SetAlpha(a)
}

func (v *View) Alpha() float64 { return v.alpha }

func (v *View) SetArrowVisible(on bool) {
	v.arrowOn = on
	v.surface.SetArrowVisible(on)
}

func (v *View) ArrowVisible() bool { return v.arrowOn }

// SetArrowRotation normalizes deg to [0, 360) and ignores changes smaller
// than minRotationDelta.
func (v *View) SetArrowRotation(deg float64) {
	deg = geom.NormalizeDegrees(deg)
	if v.rotationOK && angleDelta(v.rotation, deg) < minRotationDelta {
		return
	}
	v.rotation, v.rotationOK = deg, true
	v.surface.SetArrowRotation(deg)
}

func (v *View) ArrowRotation() float64 { return v.rotation }

func (v *View) SetDistanceVisible(on bool) {
	v.labelOn = on
	v.surface.SetLabelVisible(on)
}

func (v *View) DistanceVisible() bool { return v.labelOn }

// SetDistanceText only reaches the surface when the text changes.
func (v *View) SetDistanceText(s string) {
	if s == v.label {
		return
	}
	v.label = s
	v.surface.SetLabel(s)
}

func (v *View) DistanceText() string { return v.label }

func (v *View) VisibilityAlpha() float64 { return v.visibilityAlpha }
func (v *View) SetVisibilityAlpha(a float64) { v.visibilityAlpha = a }

// ScreenSize returns the drawn size of the indicator in screen pixels,
// measured from its current local bounding box.
func (v *View) ScreenSize(vp Viewport) geom.Vec2 {
	half := v.surface.Size().Scale(v.scale / 2)
	a := vp.LocalToScreen(v.position.Sub(half))
	b := vp.LocalToScreen(v.position.Add(half))
	return geom.Vec2{X: math.Abs(b.X - a.X), Y: math.Abs(b.Y - a.Y)}
}

func (v *View) Destroy() {
	if v.surface != nil {
		v.surface.Release()
		v.surface = nil
	}
	v.active = false
}

// angleDelta returns the unsigned shortest difference between two angles
// in [0, 360).
func angleDelta(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}
