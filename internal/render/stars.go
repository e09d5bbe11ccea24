package render

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/starmap/internal/geom"
	"github.com/spacehole-rogue/starmap/internal/world"
)

const (
	brightMagnitude = 1.0
	nearDepth       = 400.0
	minStarScale    = 0.3
	maxStarScale    = 1.5
)

// StarPoint is a star projected for drawing.
type StarPoint struct {
	Name      string
	Screen    geom.Vec2
	Depth     float64
	Class     world.SpectralClass
	Magnitude float64
	Tracked   bool
}

// StarGlyph picks the glyph, scale and alpha for a star. Brighter stars
// (lower magnitude) get the sun glyph; closer stars draw larger.
func StarGlyph(magnitude, depth float64) (glyph byte, scale float64, alpha float32) {
	glyph = GlyphBullet
	if magnitude < brightMagnitude {
		glyph = GlyphSun
	}
	scale = maxStarScale
	if depth > 0 {
		scale = geom.Clamp(nearDepth/depth, minStarScale, maxStarScale)
	}
	alpha = float32(geom.Clamp(1-magnitude/8, 0.25, 1))
	return glyph, scale, alpha
}

// SortFarFirst orders stars back to front.
func SortFarFirst(pts []StarPoint) {
	slices.SortStableFunc(pts, func(a, b StarPoint) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

// DrawStars paints the visible stars. Points behind the camera are skipped.
func DrawStars(screen *ebiten.Image, r *GridRenderer, pts []StarPoint) {
	SortFarFirst(pts)
	for _, p := range pts {
		if p.Depth <= 0 {
			continue
		}
		g, s, a := StarGlyph(p.Magnitude, p.Depth)
		r.DrawGlyph(screen, g, StarColor(p.Class), p.Screen.X, p.Screen.Y, s, 0, a)
		if p.Tracked {
			r.DrawGlyph(screen, GlyphBrackets, ColorLightGreen, p.Screen.X, p.Screen.Y, s+0.5, 0, 0.6)
		}
	}
}
