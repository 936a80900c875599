package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/tapkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []tapkit.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e tapkit.InteractionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(tapkit.InteractionEvent{
		Type:   tapkit.EventTap,
		Target: 42,
		X:      100,
		Y:      200,
	})
	sink.EmitEvent(tapkit.InteractionEvent{
		Type:   tapkit.EventDrag,
		DeltaX: 15,
		DeltaY: -3,
	})

	// Events are queued; process them.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != tapkit.EventTap || e0.Target != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.X, e0.Y)
	}
	e1 := received[1]
	if e1.Type != tapkit.EventDrag || e1.DeltaX != 15 || e1.DeltaY != -3 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink tapkit.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_FromDispatcher(t *testing.T) {
	world := donburi.NewWorld()
	clock := &fixedClock{now: time.Unix(1000, 0)}
	d := tapkit.NewDispatcher[string](tapkit.DispatcherConfig{
		Sink:  NewDonburiSink(world),
		Clock: clock,
	})
	id := d.Register(staticBounds{Right: 100, Bottom: 100}, tapkit.Options[string]{Data: "red"})

	var types []tapkit.EventType
	InteractionEventType.Subscribe(world, func(w donburi.World, e tapkit.InteractionEvent) {
		if e.Target != id {
			t.Errorf("event target = %v, want %v", e.Target, id)
		}
		types = append(types, e.Type)
	})

	d.Press(50, 50)
	d.Release(50, 50)
	d.Press(50, 50)
	d.Release(50, 50)
	events.ProcessAllEvents(world)

	want := []tapkit.EventType{tapkit.EventPress, tapkit.EventTap, tapkit.EventPress, tapkit.EventTapSuppressed}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e tapkit.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e tapkit.InteractionEvent) {
		count2++
	})

	sink.EmitEvent(tapkit.InteractionEvent{Type: tapkit.EventHold})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

type staticBounds tapkit.Rect

func (b staticBounds) Bounds() tapkit.Rect { return tapkit.Rect(b) }
