package indicator

import (
	"math"

	"github.com/spacehole-rogue/starmap/internal/geom"
	"github.com/spacehole-rogue/starmap/internal/log"
)

// State is the lifecycle state of a Controller.
type State uint8

const (
	StateIdle      State = iota // created, Enable not yet called
	StateActive                 // updating every frame
	StateDisabling              // fading out after Disable
	StateInactive               // terminal until Enable is called again
	StateInert                  // no prefab; does nothing
)

func (s State) String() string {
	return [...]string{"idle", "active", "disabling", "inactive", "inert"}[s]
}

const (
	// The arrow glyph points up at rotation 0, which is -90 degrees in
	// screen space.
	arrowNeutralAngle = 90

	// Arrow rotation changes at or below this many degrees are not pushed.
	rotationEpsilon = 0.1

	minFadeDuration = 0.01
)

// Destroyable is implemented by entities that can go away while tracked.
type Destroyable interface {
	Destroyed() bool
}

// Controller tracks one target and drives one View: it projects the target
// every frame, decides whether the indicator is shown, pins it to the
// boundary edge with an arrow when the target is off screen, and writes
// the distance label.
//
// The exported fields are the configuration; they may be changed between
// frames.
type Controller struct {
	Target           Entity     // nil tracks the host
	Camera           Camera     // required
	Viewport         Viewport   // nil uses SharedViewport
	Boundary         RectEntity // nil uses the whole viewport
	TrackAsUIElement bool
	HideWhenOnScreen bool

	CheckDistance  float64 // meters; beyond this the indicator fades out
	BorderOffset   float64 // pixels between the boundary edge and the indicator
	FadeDuration   float64 // seconds for a full visibility fade
	TransitionEase float64 // SmoothDamp time constant; 0 snaps

	DistanceUnit   DistanceUnit
	DistanceFormat string // {value} and {unit} placeholders
	DistanceSource Entity // nil measures from the camera

	DistanceFadeEnabled bool
	FadeStartDistance   float64 // fully opaque at and beyond
	FadeEndDistance     float64 // fully transparent at and below

	Icon   string
	Scale  float64
	Prefab Prefab

	host        Entity
	lg          *log.Logger
	view        *View
	state       State
	inertLogged bool

	screenW, screenH float64
	bounds           geom.Rect

	goal       geom.Vec2 // unsmoothed target position, screen space
	pos        geom.Vec2 // smoothed position, screen space
	vel        geom.Vec2
	placed     bool
	arrowOn    bool
	arrowAngle float64

	onScreen    bool
	targetWorld geom.Vec3
	distance    float64
	alpha       float64
}

// NewController returns a controller hosted by host, which is tracked when
// no target is set. Defaults match DefaultSettings.
func NewController(host Entity, lg *log.Logger) *Controller {
	c := &Controller{host: host, lg: lg}
	DefaultSettings().Apply(c)
	return c
}

// SetTarget changes the tracked entity; nil tracks the host.
func (c *Controller) SetTarget(e Entity) { c.Target = e }

func (c *Controller) SetDistanceUnit(u DistanceUnit) { c.DistanceUnit = u }

// SetRectBoundary confines the indicator to r; nil restores the full
// viewport.
func (c *Controller) SetRectBoundary(r RectEntity) {
	c.Boundary = r
	c.screenW, c.screenH = -1, -1
}

func (c *Controller) SetIcon(icon string) {
	c.Icon = icon
	if c.view != nil {
		c.view.SetIcon(icon)
	}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) View() *View { return c.view }
func (c *Controller) Alpha() float64 { return c.alpha }
func (c *Controller) Distance() float64 { return c.distance }
func (c *Controller) IsOnScreen() bool { return c.onScreen }
func (c *Controller) Bounds() geom.Rect { return c.bounds }
func (c *Controller) ScreenPos() geom.Vec2 { return c.pos }

// Enable sanitizes the settings and creates the view, hidden. A controller
// without a prefab becomes inert; one without a camera becomes inactive.
func (c *Controller) Enable() {
	if c.state == StateActive || c.state == StateDisabling {
		return
	}
	if c.Prefab == nil {
		if !c.inertLogged {
			c.lg.Error("indicator has no prefab; it will not be shown")
			c.inertLogged = true
		}
		c.state = StateInert
		return
	}
	if c.Camera == nil {
		c.lg.Error("indicator has no camera; disabling")
		c.state = StateInactive
		return
	}
	c.sanitize()

	if c.view == nil {
		c.view = NewView(c.Prefab())
		c.view.SetScale(c.Scale)
		c.view.SetIcon(c.Icon)
	}
	c.screenW, c.screenH = -1, -1
	c.placed = false
	c.state = StateActive
}

// Disable fades the indicator out and then deactivates it. It only acts
// on an active controller whose view is shown.
func (c *Controller) Disable() {
	if c.state != StateActive || !c.view.Active() {
		return
	}
	c.state = StateDisabling
}

// Destroy releases the view. The controller cannot be enabled again.
func (c *Controller) Destroy() {
	if c.view != nil {
		c.view.Destroy()
		c.view = nil
	}
	c.Prefab = nil
	c.state = StateInactive
}

// Update advances the controller by dt seconds. It is called once per
// frame.
func (c *Controller) Update(dt float64) {
	switch c.state {
	case StateActive:
		c.update(dt)
	case StateDisabling:
		c.fadeOut(dt)
	}
}

func (c *Controller) update(dt float64) {
	if c.Camera == nil {
		c.lg.Error("indicator lost its camera; disabling")
		c.view.SetActive(false)
		c.state = StateInactive
		return
	}
	c.sanitize()
	vp := c.viewport()
	c.refreshBounds(vp)

	target := c.target()
	proj := projectorFor(c.TrackAsUIElement).project(target, c.Camera, vp)
	c.onScreen = !proj.behind && c.bounds.ContainsStrict(proj.screen)

	c.targetWorld = target.Position()
	c.distance = geom.Distance(c.source().Position(), c.targetWorld)

	vis := classify(c.onScreen, c.HideWhenOnScreen, c.distance, c.CheckDistance)
	switch vis.place {
	case placeOnScreen:
		c.goal = proj.screen
		c.arrowOn = false
	case placeEdge:
		c.goal, c.arrowAngle = c.edgePosition(proj)
		c.arrowOn = true
	}

	va := geom.MoveTowards(c.view.VisibilityAlpha(), vis.targetAlpha, dt/c.FadeDuration)
	c.view.SetVisibilityAlpha(va)
	da := 1.0
	if c.DistanceFadeEnabled {
		da = distanceAlpha(c.distance, c.FadeStartDistance, c.FadeEndDistance)
	}
	c.alpha = va * da

	if !c.placed || c.TransitionEase <= 0 {
		c.pos, c.vel, c.placed = c.goal, geom.Vec2{}, true
	} else {
		c.pos = geom.SmoothDamp(c.pos, c.goal, &c.vel, c.TransitionEase, dt)
	}

	showLabel := vis.place == placeOnScreen && c.DistanceUnit != UnitNone && !c.HideWhenOnScreen
	c.push(vp, showLabel)
}

func (c *Controller) fadeOut(dt float64) {
	c.alpha = geom.MoveTowards(c.alpha, 0, dt/c.FadeDuration)
	c.view.SetVisibilityAlpha(c.alpha)
	c.view.SetAlpha(c.alpha)
	if c.alpha <= 0 {
		c.view.SetActive(false)
		c.state = StateInactive
		c.lg.Debug("indicator disabled")
	}
}

func (c *Controller) sanitize() {
	if c.FadeEndDistance > c.FadeStartDistance {
		c.FadeEndDistance = c.FadeStartDistance
	}
	if c.BorderOffset < 0 {
		c.BorderOffset = 0
	}
	if c.FadeDuration < minFadeDuration {
		c.FadeDuration = minFadeDuration
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
}

// viewport resolves a nil Viewport to the shared one.
func (c *Controller) viewport() Viewport {
	if c.Viewport == nil {
		return SharedViewport()
	}
	return c.Viewport
}

// source resolves a nil DistanceSource to the current camera.
func (c *Controller) source() Entity {
	if c.DistanceSource == nil {
		return c.Camera
	}
	return c.DistanceSource
}

func (c *Controller) target() Entity {
	t := c.Target
	if d, ok := t.(Destroyable); ok && d.Destroyed() {
		t = nil
	}
	if t == nil {
		t = c.host
	}
	if t == nil {
		t = origin{}
	}
	return t
}

// refreshBounds projects a custom boundary every frame since it may move;
// the full viewport is only recomputed when its size changes.
func (c *Controller) refreshBounds(vp Viewport) {
	if c.Boundary != nil {
		var pts [4]geom.Vec2
		for i, p := range c.Boundary.Corners() {
			pts[i] = vp.WorldToScreen(p)
		}
		c.bounds = geom.RectFromPoints(pts[:]...)
		c.screenW, c.screenH = -1, -1
		return
	}
	w, h := vp.Size()
	if w != c.screenW || h != c.screenH {
		c.screenW, c.screenH = w, h
		c.bounds = geom.ScreenRect(w, h)
	}
}

// edgePosition returns where on the inset boundary the indicator goes for
// an off-screen projection, and the arrow rotation in degrees.
func (c *Controller) edgePosition(p projection) (geom.Vec2, float64) {
	center := c.bounds.Center()
	pt := p.screen
	if p.behind {
		pt = pt.Mirror(center)
	}
	dir := pt.Sub(center).Normalize()
	if dir.IsZero() {
		return center, c.arrowAngle
	}
	angle := geom.Degrees(math.Atan2(dir.Y, dir.X)) + arrowNeutralAngle

	box := c.bounds.Inset(c.BorderOffset + c.halfSize())
	t, ok := box.ExitRay(center, dir)
	if !ok {
		return center, angle
	}
	return box.ClosestPoint(center.Add(dir.Scale(t))), angle
}

// halfSize is half the larger side of the indicator as currently drawn.
func (c *Controller) halfSize() float64 {
	s := c.view.ScreenSize(c.viewport())
	return math.Max(s.X, s.Y) / 2
}

// push writes changed values to the view.
func (c *Controller) push(vp Viewport, showLabel bool) {
	v := c.view
	if !v.Active() {
		v.SetActive(true)
	}
	if local := vp.ScreenToLocal(c.pos); local != v.Position() {
		v.SetPosition(local)
	}
	if c.Icon != v.Icon() {
		v.SetIcon(c.Icon)
	}
	if c.Scale != v.Scale() {
		v.SetScale(c.Scale)
	}
	if c.alpha != v.Alpha() {
		v.SetAlpha(c.alpha)
	}
	if c.arrowOn != v.ArrowVisible() {
		v.SetArrowVisible(c.arrowOn)
	}
	if c.arrowOn && (!v.rotationOK || angleDelta(geom.NormalizeDegrees(c.arrowAngle), v.ArrowRotation()) > rotationEpsilon) {
		v.SetArrowRotation(c.arrowAngle)
	}
	if showLabel != v.DistanceVisible() {
		v.SetDistanceVisible(showLabel)
	}
	if showLabel {
		v.SetDistanceText(FormatDistance(c.distance, c.DistanceUnit, c.DistanceFormat))
	}
}

type origin struct{}

func (origin) Position() geom.Vec3 { return geom.Vec3{} }
