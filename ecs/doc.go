// Package ecs provides ECS adapters for tapkit's interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges tapkit interaction
// events (press, tap, suppressed tap, drag, hold) into a [Donburi] world as
// typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	dispatcher.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
