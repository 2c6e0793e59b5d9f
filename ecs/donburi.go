// Package ecs provides ECS adapters for glint.
package ecs

import (
	"time"

	"github.com/phanxgames/glint"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// RevealEventType is the Donburi event type for glint reveal events.
// Subscribe to this in your ECS systems to react to sections scrolling into
// view.
var RevealEventType = events.NewEventType[glint.RevealEvent]()

// RevealedData records one fired reveal on an entity.
type RevealedData struct {
	Name      string
	ElementID uint32
	Kind      glint.RevealKind
	At        time.Duration
}

// Revealed is attached to one entity per fired reveal.
var Revealed = donburi.NewComponentType[RevealedData]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a RevealSink backed by a Donburi world. Every reveal
// is published to RevealEventType and recorded as an entity with the
// Revealed component.
func NewDonburiSink(world donburi.World) glint.RevealSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitReveal(event glint.RevealEvent) {
	entity := s.world.Create(Revealed)
	Revealed.SetValue(s.world.Entry(entity), RevealedData{
		Name:      event.Name,
		ElementID: event.ElementID,
		Kind:      event.Kind,
		At:        event.At,
	})
	RevealEventType.Publish(s.world, event)
}

// RevealedNames returns the names of every revealed region recorded in world.
func RevealedNames(world donburi.World) []string {
	var names []string
	donburi.NewQuery(filter.Contains(Revealed)).Each(world, func(e *donburi.Entry) {
		names = append(names, Revealed.Get(e).Name)
	})
	return names
}
