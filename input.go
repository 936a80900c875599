package tapkit

import "github.com/hajimehoshi/ebiten/v2"

// PointerHandler receives the single-pointer event stream produced by Input.
// *Dispatcher satisfies it for any payload type.
type PointerHandler interface {
	Press(x, y float64)
	Move(x, y float64)
	Release(x, y float64)
	Tick()
}

// Input polls Ebitengine's mouse and touch state once per frame and turns
// it into Press/Move/Release calls on a PointerHandler. Only one pointer is
// tracked at a time: the first touch to go down owns the session and any
// further touches are ignored until it lifts. A mouse press is picked up
// only while no touch is down.
type Input struct {
	handler PointerHandler

	source   pointerSource
	touchID  ebiten.TouchID
	down     bool
	lastX    float64
	lastY    float64
	touchBuf []ebiten.TouchID

	sampleBuf []touchSample

	injectQueue []syntheticPointerEvent
}

type pointerSource uint8

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
	sourceSynthetic
)

// NewInput creates an input pump feeding h.
func NewInput(h PointerHandler) *Input {
	return &Input{handler: h}
}

// Update consumes one frame of input and then ticks the handler so hold
// checks fire on the game loop. Queued synthetic events take priority over
// real devices: while any are pending, one is applied per frame and the
// mouse and touch screen are not read.
func (in *Input) Update() {
	if !in.processInjected() {
		in.processDevices()
	}
	in.handler.Tick()
}

// Down reports whether a pointer is currently pressed.
func (in *Input) Down() bool {
	return in.down
}

// touchSample is one touch point as read this frame.
type touchSample struct {
	id   ebiten.TouchID
	x, y float64
}

// deviceSample is one frame of raw device state.
type deviceSample struct {
	touches        []touchSample
	mouseX, mouseY float64
	mouseDown      bool
}

// processDevices samples Ebitengine's touch and mouse state and applies it.
func (in *Input) processDevices() {
	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
	in.sampleBuf = in.sampleBuf[:0]
	for _, id := range in.touchBuf {
		x, y := ebiten.TouchPosition(id)
		in.sampleBuf = append(in.sampleBuf, touchSample{id: id, x: float64(x), y: float64(y)})
	}
	mx, my := ebiten.CursorPosition()
	in.applyDevices(deviceSample{
		touches:   in.sampleBuf,
		mouseX:    float64(mx),
		mouseY:    float64(my),
		mouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})
}

// applyDevices picks the pointer that owns this frame. The touch that owns
// the session is followed until it lifts, when it releases at its last seen
// position; other touches are ignored meanwhile. A held mouse keeps the
// session until its button comes up. With nothing down, a new touch wins
// over the mouse.
func (in *Input) applyDevices(s deviceSample) {
	switch {
	case in.down && in.source == sourceTouch:
		for _, t := range s.touches {
			if t.id == in.touchID {
				in.pointer(sourceTouch, t.x, t.y, true)
				return
			}
		}
		in.pointer(sourceTouch, in.lastX, in.lastY, false)
	case in.down && in.source == sourceMouse:
		in.pointer(sourceMouse, s.mouseX, s.mouseY, s.mouseDown)
	case in.down:
		// A synthetic press is waiting for its injected release.
	case len(s.touches) > 0:
		t := s.touches[0]
		in.touchID = t.id
		in.pointer(sourceTouch, t.x, t.y, true)
	default:
		in.pointer(sourceMouse, s.mouseX, s.mouseY, s.mouseDown)
	}
}

// pointer runs the press/move/release transitions for one sample.
func (in *Input) pointer(src pointerSource, x, y float64, pressed bool) {
	switch {
	case pressed && !in.down:
		in.down = true
		in.source = src
		in.lastX, in.lastY = x, y
		in.handler.Press(x, y)
	case pressed && in.down:
		if x != in.lastX || y != in.lastY {
			in.lastX, in.lastY = x, y
			in.handler.Move(x, y)
		}
	case !pressed && in.down:
		in.down = false
		in.source = sourceNone
		in.lastX, in.lastY = x, y
		in.handler.Release(x, y)
	}
}
