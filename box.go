package tapkit

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	boxPressedScale  = 0.95
	boxPressDuration = float32(0.1) // seconds
)

// Box is a solid rectangle element usable as a touch target. While active
// it eases down to 95% scale about its center and back up when released,
// the same squeeze the web games used for their pressed state.
//
// There is no global animation manager; call Update(dt) each frame.
type Box struct {
	X, Y, Width, Height float64
	Color               Color

	// Scale is the current visual scale about the center. Bounds follow it.
	Scale float64

	active bool
	tween  *gween.Tween
}

// NewBox creates a box at (x, y) with the given size and color.
func NewBox(x, y, w, h float64, c Color) *Box {
	return &Box{X: x, Y: y, Width: w, Height: h, Color: c, Scale: 1}
}

// Bounds returns the box's current on-screen rectangle.
func (b *Box) Bounds() Rect {
	w := b.Width * b.Scale
	h := b.Height * b.Scale
	cx := b.X + b.Width/2
	cy := b.Y + b.Height/2
	return RectXYWH(cx-w/2, cy-h/2, w, h)
}

// SetActive starts the press or release animation. Repeated calls with the
// same state are ignored.
func (b *Box) SetActive(active bool) {
	if active == b.active {
		return
	}
	b.active = active
	to := float32(1)
	if active {
		to = boxPressedScale
	}
	b.tween = gween.New(float32(b.Scale), to, boxPressDuration, ease.OutQuad)
}

// Active reports whether the box is showing its pressed state.
func (b *Box) Active() bool {
	return b.active
}

// Update advances the press animation by dt seconds.
func (b *Box) Update(dt float32) {
	if b.tween == nil {
		return
	}
	val, finished := b.tween.Update(dt)
	b.Scale = float64(val)
	if finished {
		b.tween = nil
	}
}

// Draw fills the box's current bounds.
func (b *Box) Draw(screen *ebiten.Image) {
	r := b.Bounds()
	vector.DrawFilledRect(screen,
		float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		b.Color.toRGBA(), false)
}
