package render

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	labelCacheSize = 64
	labelTTL       = 30 * time.Second
	labelPadX      = 2
	labelPadY      = 1
)

// LabelCache keeps rasterized distance labels. Label text changes only
// when the displayed distance changes, so most frames hit the cache.
//
// Evicted images are queued and deallocated from the draw goroutine in
// Flush; the expiry sweep runs on its own goroutine.
type LabelCache struct {
	face     font.Face
	lru      *expirable.LRU[string, *ebiten.Image]
	newImage func(image.Image) *ebiten.Image
	release  func(*ebiten.Image)

	mu      sync.Mutex
	pending []*ebiten.Image
}

// NewLabelCache creates a cache backed by basicfont.Face7x13.
func NewLabelCache() *LabelCache {
	c := &LabelCache{
		face:     basicfont.Face7x13,
		newImage: ebiten.NewImageFromImage,
		release:  (*ebiten.Image).Deallocate,
	}
	c.lru = expirable.NewLRU[string, *ebiten.Image](labelCacheSize, c.evicted, labelTTL)
	return c
}

func (c *LabelCache) evicted(_ string, img *ebiten.Image) {
	c.mu.Lock()
	c.pending = append(c.pending, img)
	c.mu.Unlock()
}

// Image returns the image for text, rasterizing it on a miss.
func (c *LabelCache) Image(text string) *ebiten.Image {
	if text == "" {
		return nil
	}
	if img, ok := c.lru.Get(text); ok {
		return img
	}
	img := c.newImage(RasterizeLabel(c.face, text))
	c.lru.Add(text, img)
	return img
}

// Len reports the number of cached labels.
func (c *LabelCache) Len() int { return c.lru.Len() }

// Flush deallocates evicted images. Call it once per frame from Draw.
func (c *LabelCache) Flush() int {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()
	for _, img := range pending {
		c.release(img)
	}
	return len(pending)
}

// Purge drops every cached label and deallocates the images.
func (c *LabelCache) Purge() {
	c.lru.Purge()
	c.Flush()
}

// RasterizeLabel draws text in white on a transparent, tightly padded image.
func RasterizeLabel(face font.Face, text string) *image.NRGBA {
	m := face.Metrics()
	adv := font.MeasureString(face, text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	img := image.NewNRGBA(image.Rect(0, 0, adv+2*labelPadX, h+2*labelPadY))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(labelPadX), Y: fixed.I(labelPadY) + m.Ascent},
	}
	d.DrawString(text)
	return img
}
