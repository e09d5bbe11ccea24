package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is one character cell of the HUD text layer.
type Cell struct {
	Glyph byte  // atlas code
	FG    uint8 // foreground palette index
	BG    uint8 // background palette index
}

var blankCell = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// CellBuffer is the HUD text grid drawn over the star field.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a buffer of blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Resize changes the grid dimensions and clears it.
func (b *CellBuffer) Resize(cols, rows int) {
	if cols == b.Cols && rows == b.Rows {
		b.Clear()
		return
	}
	b.Cols, b.Rows = cols, rows
	b.Cells = make([]Cell, cols*rows)
	b.Clear()
}

func (b *CellBuffer) in(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if b.in(x, y) {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell. Out-of-bounds reads return the zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.in(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets every cell to a space on black.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blankCell
	}
}

// WriteString writes s from (x, y), one cell per rune. Runes outside the
// atlas become '?'. Returns the column after the last written cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x, y, byte(ch), fg, bg)
		x++
	}
	return x
}

// WriteRight writes s so that its last rune lands in column x.
func (b *CellBuffer) WriteRight(x, y int, s string, fg, bg uint8) {
	n := 0
	for range s {
		n++
	}
	b.WriteString(x-n+1, y, s, fg, bg)
}

// FillRow paints a whole row with one glyph.
func (b *CellBuffer) FillRow(y int, glyph byte, fg, bg uint8) {
	for x := 0; x < b.Cols; x++ {
		b.Set(x, y, glyph, fg, bg)
	}
}

// GridRenderer draws cell buffers and free glyphs with the atlas.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image
}

// NewGridRenderer creates a renderer with the given atlas and cell size.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{
		Atlas:   atlas,
		CellW:   cellW,
		CellH:   cellH,
		bgPixel: bgPixel,
	}
}

// Draw renders the entire buffer. Blank cells on black are skipped so the
// star field shows through.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			if cell.BG != ColorBlack {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.BG])
				screen.DrawImage(r.bgPixel, &op)
			}
			if cell.Glyph != ' ' && cell.Glyph != 0 {
				op = ebiten.DrawImageOptions{}
				op.GeoM.Scale(scaleX, scaleY)
				op.GeoM.Translate(px, py)
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
				screen.DrawImage(r.Atlas.Glyph(cell.Glyph), &op)
			}
		}
	}
}

// DrawRect fills a screen rectangle with a translucent palette color.
func (r *GridRenderer) DrawRect(screen *ebiten.Image, x, y, w, h float64, c uint8, alpha float32) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(Palette[c])
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(r.bgPixel, &op)
}

// DrawGlyph renders a glyph centered on (cx, cy), scaled relative to one
// cell and rotated clockwise by rotDeg.
func (r *GridRenderer) DrawGlyph(screen *ebiten.Image, glyph byte, fg uint8, cx, cy, scale, rotDeg float64, alpha float32) {
	if glyph == ' ' || glyph == 0 || alpha <= 0 || scale <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-GlyphWidth/2, -GlyphHeight/2)
	op.GeoM.Scale(scale*float64(r.CellW)/GlyphWidth, scale*float64(r.CellH)/GlyphHeight)
	if rotDeg != 0 {
		op.GeoM.Rotate(rotDeg * math.Pi / 180)
	}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(Palette[fg])
	op.ColorScale.ScaleAlpha(alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}
