package tapkit

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugHitboxColor = color.RGBA{R: 255, A: 255}
	debugBoundsColor = color.RGBA{R: 255, G: 255, A: 255}
)

const debugStrokeWidth = 2

// SetDebug toggles the hitbox overlay drawn by DrawDebug.
func (d *Dispatcher[T]) SetDebug(on bool) {
	d.debug = on
}

// Debug reports whether the hitbox overlay is on.
func (d *Dispatcher[T]) Debug() bool {
	return d.debug
}

// DrawDebug outlines every target's padded hitbox in red and its element
// bounds in yellow. Does nothing unless debug is on.
func (d *Dispatcher[T]) DrawDebug(screen *ebiten.Image) {
	if !d.debug {
		return
	}
	for _, t := range d.targets {
		if t.el == nil {
			continue
		}
		b := t.el.Bounds()
		strokeRect(screen, b.Expand(t.padding()), debugHitboxColor)
		strokeRect(screen, b, debugBoundsColor)
	}
}

func strokeRect(dst *ebiten.Image, r Rect, clr color.Color) {
	vector.StrokeRect(dst,
		float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()),
		debugStrokeWidth, clr, false)
}

// checkMinSize warns when a target's element is smaller than its MinSize.
// Advisory only.
func (d *Dispatcher[T]) checkMinSize(t *target[T]) {
	if t.el == nil {
		return
	}
	b := t.el.Bounds()
	if b.Width() < t.opts.MinSize || b.Height() < t.opts.MinSize {
		d.logger.Warn("touch target smaller than minimum size",
			"target", t.id, "width", b.Width(), "height", b.Height(), "min", t.opts.MinSize)
	}
}
