// Package ecs provides ECS adapters for glint's reveal events.
//
// The primary adapter is [NewDonburiSink], which bridges reveal events into a
// [Donburi] world, both as typed events and as entities carrying the
// [Revealed] component. Subscribe to [RevealEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	page := glint.NewPage(cfg, glint.PageOptions{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
