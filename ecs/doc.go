// Package ecs provides ECS adapters for sway's action manager.
//
// The primary adapter is [NewDonburiSink], which bridges manager lifecycle
// events (added, done, removed) into a [Donburi] world as typed events.
// Subscribe to [ActionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.Actions().SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
