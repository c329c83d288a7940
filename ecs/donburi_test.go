package ecs

import (
	"testing"

	"github.com/phanxgames/skyline"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

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

	var received []skyline.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e skyline.SceneEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(skyline.SceneEvent{
		Type:     skyline.EventBuildingRecycled,
		Building: 7,
		Side:     -1,
		Z:        2400,
	})
	sink.EmitEvent(skyline.SceneEvent{Type: skyline.EventRainOn, Building: -1})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != skyline.EventBuildingRecycled || e0.Building != 7 || e0.Side != -1 {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Type != skyline.EventRainOn {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_SceneIntegration(t *testing.T) {
	world := donburi.NewWorld()

	cfg := skyline.DefaultConfig()
	cfg.BuildingCount = 4
	cfg.Stars, cfg.Steam, cfg.Clouds = false, false, false
	scene, err := skyline.NewScene(cfg, 800, 600,
		skyline.WithRand(skyline.NewRand(1)),
		skyline.WithEventSink(NewDonburiSink(world)))
	if err != nil {
		t.Fatal(err)
	}

	counts := map[skyline.EventType]int{}
	SceneEventType.Subscribe(world, func(w donburi.World, e skyline.SceneEvent) {
		counts[e.Type]++
	})

	scene.SetRain(true)
	scene.TriggerPowerSurge()
	scene.SetRain(false)
	events.ProcessAllEvents(world)

	if counts[skyline.EventRainOn] != 1 || counts[skyline.EventRainOff] != 1 {
		t.Errorf("rain events = %v, want one on and one off", counts)
	}
	if counts[skyline.EventPowerSurge] != 1 {
		t.Errorf("surge events = %d, want 1", counts[skyline.EventPowerSurge])
	}
}

func TestDonburiSink_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink skyline.EventSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}
