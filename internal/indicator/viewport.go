package indicator

import (
	"sync"

	"github.com/spacehole-rogue/starmap/internal/geom"
)

// ScreenViewport is an overlay canvas covering the whole window. Its local
// space is screen space.
type ScreenViewport struct {
	w, h float64
}

// NewScreenViewport returns an overlay canvas of the given size.
func NewScreenViewport(w, h float64) *ScreenViewport {
	return &ScreenViewport{w: w, h: h}
}

// Resize is called by the frame loop when the window layout changes.
func (v *ScreenViewport) Resize(w, h float64) {
	v.w, v.h = w, h
}

func (v *ScreenViewport) Size() (float64, float64) { return v.w, v.h }
func (v *ScreenViewport) WorldToScreen(p geom.Vec3) geom.Vec2 { return p.XY() }
func (v *ScreenViewport) ScreenToLocal(p geom.Vec2) geom.Vec2 { return p }
func (v *ScreenViewport) LocalToScreen(p geom.Vec2) geom.Vec2 { return p }

var (
	sharedOnce     sync.Once
	sharedViewport *ScreenViewport
	sharedCreated  int
)

// SharedViewport returns the process-wide overlay canvas used by
// controllers that were not given a Viewport. It is created on first use.
func SharedViewport() *ScreenViewport {
	sharedOnce.Do(func() {
		sharedViewport = NewScreenViewport(DefaultScreenWidth, DefaultScreenHeight)
		sharedCreated++
	})
	return sharedViewport
}

// Initial size of the shared canvas until the frame loop resizes it.
const (
	DefaultScreenWidth  = 1280
	DefaultScreenHeight = 720
)
