package ecs

import (
	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEventType is the Donburi event type for sway action lifecycle events.
var ActionEventType = events.NewEventType[sway.ActionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on ActionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) sway.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sway.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}
