package world

import (
	"math"

	"github.com/spacehole-rogue/starmap/internal/geom"
)

// Camera is a perspective camera with Y up. Yaw turns around Y, pitch
// tilts up and down; at zero yaw and pitch it looks along +Z.
type Camera struct {
	Pos   geom.Vec3
	Yaw   float64 // radians
	Pitch float64 // radians
	FOV   float64 // vertical field of view, radians

	width, height float64
}

const (
	maxPitch = 89 * math.Pi / 180
	minDepth = 1e-4
)

// NewCamera returns a camera at pos rendering to a w x h screen.
func NewCamera(pos geom.Vec3, fovDegrees, w, h float64) *Camera {
	return &Camera{Pos: pos, FOV: geom.Radians(fovDegrees), width: w, height: h}
}

func (c *Camera) Position() geom.Vec3 { return c.Pos }

// Resize is called by the frame loop when the window layout changes.
func (c *Camera) Resize(w, h float64) {
	c.width, c.height = w, h
}

func (c *Camera) ScreenSize() (float64, float64) { return c.width, c.height }

// Turn rotates the camera; pitch is clamped short of straight up/down.
func (c *Camera) Turn(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 2*math.Pi)
	c.Pitch = geom.Clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// Basis returns the camera's right, up and forward unit vectors.
func (c *Camera) Basis() (right, up, forward geom.Vec3) {
	cp := math.Cos(c.Pitch)
	forward = geom.V3(math.Sin(c.Yaw)*cp, math.Sin(c.Pitch), math.Cos(c.Yaw)*cp)
	right = geom.V3(0, 1, 0).Cross(forward).Normalize()
	up = forward.Cross(right)
	return
}

// WorldToScreen projects p to screen pixels, y down. The Z component is
// the signed distance along the view direction; points behind the camera
// have negative depth and come out mirrored through the screen center.
func (c *Camera) WorldToScreen(p geom.Vec3) geom.Vec3 {
	right, up, forward := c.Basis()
	d := p.Sub(c.Pos)
	x, y, z := d.Dot(right), d.Dot(up), d.Dot(forward)

	div := z
	if math.Abs(div) < minDepth {
		div = math.Copysign(minDepth, div)
	}
	focal := (c.height / 2) / math.Tan(c.FOV/2)
	return geom.V3(c.width/2+x*focal/div, c.height/2-y*focal/div, z)
}
