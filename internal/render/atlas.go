package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// Shape glyph codes keep their CP437 positions; basicfont has nothing there.
const (
	GlyphDiamond  byte = 4   // ♦ generic marker
	GlyphBullet   byte = 7   // • dim star
	GlyphSun      byte = 15  // ☼ bright star
	GlyphArrow    byte = 30  // ▲ direction arrow, points up
	GlyphShade    byte = 176 // ░
	GlyphBlock    byte = 219 // █
	GlyphBrackets byte = 127 // ⌂ reused as target brackets
)

// FontAtlas holds the glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the atlas at startup. ASCII characters (32-126)
// are rendered with basicfont.Face7x13; shape glyphs are drawn by hand.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight
		if code >= 32 && code <= 126 {
			drawFontGlyph(img, face, cx, cy, rune(code))
			continue
		}
		drawShapeGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 256; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a glyph code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}

// drawShapeGlyph draws the hand-made glyphs; other codes stay blank.
func drawShapeGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}
	set := func(x, y int) { img.SetNRGBA(cellX+x, cellY+y, w) }

	switch code {
	case GlyphDiamond:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if math.Abs(float64(x)-7.5)+math.Abs(float64(y)-7.5) <= 6 {
					set(x, y)
				}
			}
		}
	case GlyphBullet:
		fillDisc(set, 2.5)
	case GlyphSun:
		fillDisc(set, 4)
		for i := 1; i < 15; i++ {
			if i < 4 || i > 11 {
				set(i, 7)
				set(i, 8)
				set(7, i)
				set(8, i)
			}
		}
	case GlyphArrow:
		// Filled triangle, apex at the top center.
		for y := 2; y < 14; y++ {
			half := float64(y-2) * 0.55
			for x := 0; x < GlyphWidth; x++ {
				if math.Abs(float64(x)-7.5) <= half {
					set(x, y)
				}
			}
		}
	case GlyphShade:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 == 0 {
					set(x, y)
				}
			}
		}
	case GlyphBlock:
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				set(x, y)
			}
		}
	case GlyphBrackets:
		for i := 0; i < 5; i++ {
			set(i, 0)
			set(0, i)
			set(15-i, 0)
			set(15, i)
			set(i, 15)
			set(0, 15-i)
			set(15-i, 15)
			set(15, 15-i)
		}
	}
}

func fillDisc(set func(x, y int), r float64) {
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if math.Hypot(float64(x)-7.5, float64(y)-7.5) <= r {
				set(x, y)
			}
		}
	}
}
