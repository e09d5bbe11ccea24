package world

import "github.com/spacehole-rogue/starmap/internal/geom"

// Panel is a rectangular region of the screen overlay, in pixels.
type Panel struct {
	X, Y, W, H float64
}

func (p *Panel) Position() geom.Vec3 {
	return geom.V3(p.X+p.W/2, p.Y+p.H/2, 0)
}

// Corners returns the panel corners clockwise from the top left.
func (p *Panel) Corners() [4]geom.Vec3 {
	return [4]geom.Vec3{
		geom.V3(p.X, p.Y, 0),
		geom.V3(p.X+p.W, p.Y, 0),
		geom.V3(p.X+p.W, p.Y+p.H, 0),
		geom.V3(p.X, p.Y+p.H, 0),
	}
}

// Contains reports whether the screen point (x, y) is inside the panel.
func (p *Panel) Contains(x, y float64) bool {
	return x >= p.X && x < p.X+p.W && y >= p.Y && y < p.Y+p.H
}
