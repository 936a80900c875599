package ecs

import (
	"github.com/phanxgames/tapkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for tapkit interaction events.
// Subscribe to this in your ECS systems to receive taps, drags, and holds.
var InteractionEventType = events.NewEventType[tapkit.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tapkit.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tapkit.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
