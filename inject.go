package tapkit

// syntheticPointerEvent is a single injected pointer sample. An idle event
// consumes a frame without touching the pointer, which lets held presses
// span real time.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	idle    bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on
// the next Update.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at (x, y) with the pointer held down.
// Use this between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectWait queues frames idle frames.
func (in *Input) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		in.injectQueue = append(in.injectQueue, syntheticPointerEvent{idle: true})
	}
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (in *Input) InjectTap(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectHold queues a press, frames idle frames, and a release at the same
// point. Whether OnHold fires depends on how much real time those frames
// take relative to the hold threshold.
func (in *Input) InjectHold(x, y float64, frames int) {
	in.InjectPress(x, y)
	in.InjectWait(frames)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.InjectMove(x, y)
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

// processInjected pops one event from the inject queue and feeds it through
// the pointer state machine. Returns true if an event was consumed (real
// devices should be skipped this frame).
func (in *Input) processInjected() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	if !evt.idle {
		in.pointer(sourceSynthetic, evt.x, evt.y, evt.pressed)
	}
	return true
}
