package indicator

import "github.com/spacehole-rogue/starmap/internal/geom"

// projection is the result of projecting the target for one frame.
type projection struct {
	screen geom.Vec2
	behind bool
}

// projector selects between the two ways a target is put on screen. It is
// chosen from TrackAsUIElement on every frame.
type projector uint8

const (
	projectWorld projector = iota
	projectUI
)

func projectorFor(trackAsUI bool) projector {
	if trackAsUI {
		return projectUI
	}
	return projectWorld
}

func (p projector) project(target Entity, cam Camera, vp Viewport) projection {
	switch p {
	case projectUI:
		// Canvas elements are never behind the camera.
		return projection{screen: vp.WorldToScreen(uiCenter(target))}
	default:
		s := cam.WorldToScreen(target.Position())
		return projection{screen: s.XY(), behind: s.Z < 0}
	}
}

// uiCenter is the center of a panel's world rect, or the position of a
// target that has no rect.
func uiCenter(e Entity) geom.Vec3 {
	r, ok := e.(RectEntity)
	if !ok {
		return e.Position()
	}
	c := r.Corners()
	var sum geom.Vec3
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Scale(0.25)
}
