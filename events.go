package tapkit

import "time"

// TapEvent is passed to a target's Callback on a qualifying tap.
type TapEvent[T any] struct {
	Target    TargetID
	Element   BoundsProvider
	Position  Vec2
	Data      T
	Timestamp time.Time
}

// DragEvent is passed to a target's OnDrag while the session is dragging
// over it. Deltas are measured from the session's press position.
type DragEvent[T any] struct {
	Target  TargetID
	Element BoundsProvider
	Start   Vec2
	Current Vec2
	DeltaX  float64
	DeltaY  float64
	Data    T
}

// HoldEvent is passed to a target's OnHold once the hold threshold elapses.
// Position is the press position; it is not re-sampled when the hold fires.
type HoldEvent[T any] struct {
	Target   TargetID
	Element  BoundsProvider
	Position Vec2
	Data     T
	Duration time.Duration
}

// EventSink is the interface for optional interaction forwarding.
// When set on a Dispatcher, every press, tap, suppressed tap, drag and hold
// is reported after the target callbacks run.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for an EventSink. It omits the
// typed payload so sinks need not be generic.
type InteractionEvent struct {
	Type      EventType
	Target    TargetID
	X         float64
	Y         float64
	Timestamp time.Time
	// Drag fields (valid for EventDrag)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
	// Hold field (valid for EventHold)
	Duration time.Duration
}
