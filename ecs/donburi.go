package ecs

import (
	"github.com/phanxgames/skyline"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for skyline scene events.
// Subscribe to this in your ECS systems to receive recycle, surge and rain
// events.
var SceneEventType = events.NewEventType[skyline.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Scene events
// are published to SceneEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) skyline.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event skyline.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
