// Package ecs bridges skyline scene events into a Donburi world.
//
//	world := donburi.NewWorld()
//	scene, _ := skyline.NewScene(cfg, w, h, skyline.WithEventSink(ecs.NewDonburiSink(world)))
//	ecs.SceneEventType.Subscribe(world, onSceneEvent)
//	// each frame, after scene.Update:
//	ecs.SceneEventType.ProcessEvents(world)
package ecs
