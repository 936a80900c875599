package tapkit

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default box color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten drawing.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R) * a * 255),
		G: uint8(clamp01(c.G) * a * 255),
		B: uint8(clamp01(c.B) * a * 255),
		A: uint8(a * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point or offset in pointer coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in the same coordinate space as
// pointer events. The origin is at the top-left, with Y increasing downward.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectXYWH builds a Rect from a position and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right &&
		y >= r.Top && y <= r.Bottom
}

// Expand grows the rectangle by pad on every side. A negative pad shrinks it.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		Left:   r.Left - pad,
		Top:    r.Top - pad,
		Right:  r.Right + pad,
		Bottom: r.Bottom + pad,
	}
}

// EventType identifies a kind of interaction reported to an EventSink.
type EventType uint8

const (
	EventPress         EventType = iota // pointer pressed over a target
	EventTap                            // qualifying tap, callback invoked
	EventTapSuppressed                  // tap dropped by the double-tap window
	EventDrag                           // pointer moved past the drag threshold over a drag-enabled target
	EventHold                           // hold threshold elapsed on the pressed target
)

var eventTypeNames = [...]string{
	EventPress:         "press",
	EventTap:           "tap",
	EventTapSuppressed: "tap-suppressed",
	EventDrag:          "drag",
	EventHold:          "hold",
}

// String returns the lower-case event name.
func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}
