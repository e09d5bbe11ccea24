package indicator

import "github.com/spacehole-rogue/starmap/internal/geom"

// Entity is anything with a world-space position that can be tracked or
// measured from.
type Entity interface {
	Position() geom.Vec3
}

// RectEntity is a rectangular panel. Corners returns its four corners in
// world space; for overlay canvases world space is screen space.
type RectEntity interface {
	Entity
	Corners() [4]geom.Vec3
}

// Camera projects world points to the screen. The Z component of the
// result is the signed view depth: negative means the point is behind the
// camera.
type Camera interface {
	Entity
	WorldToScreen(p geom.Vec3) geom.Vec3
}

// Viewport is the canvas indicators are drawn on.
type Viewport interface {
	// Size returns the viewport size in screen pixels.
	Size() (w, h float64)
	// WorldToScreen maps a point of a canvas element to screen pixels.
	WorldToScreen(p geom.Vec3) geom.Vec2
	ScreenToLocal(p geom.Vec2) geom.Vec2
	LocalToScreen(p geom.Vec2) geom.Vec2
}

// Surface draws one indicator: an icon, a direction arrow and a distance
// label. Positions are in the viewport's local space.
type Surface interface {
	SetVisible(on bool)
	SetPosition(p geom.Vec2)
	SetScale(s float64)
	SetIcon(icon string)
	SetAlpha(a float64)
	SetArrowVisible(on bool)
	// SetArrowRotation takes degrees in [0, 360), clockwise on screen.
	SetArrowRotation(deg float64)
	SetLabelVisible(on bool)
	SetLabel(text string)
	// Size is the unscaled local-space size of the drawn indicator.
	Size() geom.Vec2
	Release()
}

// Prefab creates the Surface for a new indicator.
type Prefab func() Surface
