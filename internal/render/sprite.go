package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/spacehole-rogue/starmap/internal/geom"
	"github.com/spacehole-rogue/starmap/internal/indicator"
)

// SpriteSize is the unscaled footprint of an indicator sprite in pixels.
const SpriteSize = 2 * GlyphWidth

// Icons maps indicator icon names to atlas glyphs.
var Icons = map[string]byte{
	"star":   GlyphSun,
	"marker": GlyphDiamond,
	"target": GlyphBrackets,
	"dot":    GlyphBullet,
}

// IconGlyph resolves an icon name, falling back to the marker glyph.
func IconGlyph(name string) byte {
	if g, ok := Icons[name]; ok {
		return g
	}
	return GlyphDiamond
}

// IndicatorSprite is the ebiten-backed indicator surface. It only records
// state; SpriteLayer.Draw paints it.
type IndicatorSprite struct {
	layer    *SpriteLayer
	visible  bool
	pos      geom.Vec2
	scale    float64
	icon     string
	alpha    float64
	arrowOn  bool
	rotation float64
	labelOn  bool
	label    string
	Color    uint8
}

var _ indicator.Surface = (*IndicatorSprite)(nil)

func (s *IndicatorSprite) SetVisible(on bool) { s.visible = on }
func (s *IndicatorSprite) SetPosition(p geom.Vec2) { s.pos = p }
func (s *IndicatorSprite) SetScale(v float64) { s.scale = v }
func (s *IndicatorSprite) SetIcon(icon string) { s.icon = icon }
func (s *IndicatorSprite) SetAlpha(a float64) { s.alpha = geom.Clamp01(a) }
func (s *IndicatorSprite) SetArrowVisible(on bool) { s.arrowOn = on }
func (s *IndicatorSprite) SetArrowRotation(deg float64) { s.rotation = deg }
func (s *IndicatorSprite) SetLabelVisible(on bool) { s.labelOn = on }
func (s *IndicatorSprite) SetLabel(text string) { s.label = text }
func (s *IndicatorSprite) Size() geom.Vec2 { return geom.V2(SpriteSize, SpriteSize) }
func (s *IndicatorSprite) Visible() bool { return s.visible }
func (s *IndicatorSprite) Position() geom.Vec2 { return s.pos }
func (s *IndicatorSprite) Label() string { return s.label }

// Release detaches the sprite from its layer.
func (s *IndicatorSprite) Release() {
	if s.layer != nil {
		s.layer.remove(s)
		s.layer = nil
	}
}

// SpriteLayer owns the indicator sprites of one screen.
type SpriteLayer struct {
	sprites []*IndicatorSprite
	// Color is the palette index given to new sprites.
	Color uint8
}

// NewSpriteLayer creates an empty layer.
func NewSpriteLayer() *SpriteLayer {
	return &SpriteLayer{Color: ColorLightGreen}
}

// NewSprite creates a hidden sprite. Its method value is an indicator.Prefab.
func (l *SpriteLayer) NewSprite() indicator.Surface {
	s := &IndicatorSprite{layer: l, scale: 1, Color: l.Color}
	l.sprites = append(l.sprites, s)
	return s
}

// Len reports the number of live sprites.
func (l *SpriteLayer) Len() int { return len(l.sprites) }

func (l *SpriteLayer) remove(s *IndicatorSprite) {
	for i, o := range l.sprites {
		if o == s {
			l.sprites = append(l.sprites[:i], l.sprites[i+1:]...)
			return
		}
	}
}

// Draw paints every visible sprite: icon, arrow and distance label.
func (l *SpriteLayer) Draw(screen *ebiten.Image, r *GridRenderer, labels *LabelCache) {
	sh := float64(screen.Bounds().Dy())
	for _, s := range l.sprites {
		if !s.visible || s.alpha <= 0 {
			continue
		}
		a := float32(s.alpha)
		half := SpriteSize / 2 * s.scale

		r.DrawGlyph(screen, IconGlyph(s.icon), s.Color, s.pos.X, s.pos.Y, s.scale, 0, a)

		if s.arrowOn {
			rad := geom.Radians(s.rotation)
			dir := geom.V2(math.Sin(rad), -math.Cos(rad))
			at := s.pos.Add(dir.Scale(half * 0.8))
			r.DrawGlyph(screen, GlyphArrow, s.Color, at.X, at.Y, 0.6*s.scale, s.rotation, a)
		}

		if s.labelOn && labels != nil {
			img := labels.Image(s.label)
			if img == nil {
				continue
			}
			b := img.Bounds()
			x := s.pos.X - float64(b.Dx())/2
			y := s.pos.Y + half
			if y+float64(b.Dy()) > sh {
				y = s.pos.Y - half - float64(b.Dy())
			}
			var op ebiten.DrawImageOptions
			op.GeoM.Translate(math.Round(x), math.Round(y))
			op.ColorScale.ScaleWithColor(Palette[s.Color])
			op.ColorScale.ScaleAlpha(a)
			screen.DrawImage(img, &op)
		}
	}
}
