// Package skyline is the scene-state engine behind a continuously scrolling
// pseudo-3D cyberpunk skyline.
//
// A [Scene] owns a fixed number of procedurally generated [Building] slots and
// four particle systems: [StarSystem], [SteamSystem], [RainSystem] and
// [CloudSystem]. Every system is backed by a generic [ParticlePool] whose
// capacity is fixed at construction; nothing is allocated or freed per frame,
// records are only flagged active or inactive.
//
// # Quick start
//
//	scene, err := skyline.NewScene(skyline.DefaultConfig(), 800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for {
//		scene.Update(1.0 / 60)
//		for _, b := range scene.BuildingsByDepth() {
//			corners := b.Vertices()
//			// project and paint ...
//		}
//	}
//
// The engine does not draw. Renderers project [Building.Vertices] and the
// particle lists through a [Camera]; see the render package for an
// Ebitengine renderer.
//
// # Recycling
//
// Buildings regenerate in place once they pass the near plane. Stars and
// clouds wrap by position only. Rain drops are rewritten in place. Steam
// puffs are released to their pool and reacquired by later spawns.
//
// # Randomness
//
// Every procedural decision draws from one [Rand]. Scenes default to a PCG
// generator seeded from crypto/rand, so two runs never match. Inject a fixed
// source with [WithRand] for reproducible output.
//
// # Configuration
//
// [DefaultConfig] returns the stock tuning. [ConfigFromEnv] overlays SKYLINE_*
// environment variables (via [env]) so a demo can be retuned without a
// rebuild.
//
// [env]: https://github.com/caarlos0/env
package skyline
