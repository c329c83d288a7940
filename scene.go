package skyline

import (
	"fmt"
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EventSink receives scene events. Attach one with WithEventSink to bridge
// scene activity into an ECS or any other consumer.
type EventSink interface {
	EmitEvent(event SceneEvent)
}

// SceneEvent describes something that happened during a Scene call.
type SceneEvent struct {
	Type  EventType
	Frame uint64
	// Building is the slot index for building events, -1 otherwise.
	Building int
	Side     float64
	Z        float64
}

// Stats is a snapshot of scene activity.
type Stats struct {
	Frame     uint64
	Speed     float64
	Buildings int
	Stars     int
	Steam     int
	Rain      int
	Clouds    int
}

// Option configures a Scene at construction.
type Option func(*Scene)

// WithRand injects the random source. Scenes default to a PCG generator
// seeded from crypto/rand.
func WithRand(rng Rand) Option {
	return func(s *Scene) { s.rng = rng }
}

// WithEventSink attaches an event sink.
func WithEventSink(sink EventSink) Option {
	return func(s *Scene) { s.sink = sink }
}

// WithDebug enables periodic stats logging to stderr.
func WithDebug(debug bool) Option {
	return func(s *Scene) { s.debug = debug }
}

// Scene is the frame driver. It owns a fixed set of buildings and the
// particle systems enabled in its Config, and advances all of them once per
// Update call. A Scene is not safe for concurrent use.
type Scene struct {
	cfg  Config
	rng  Rand
	sink EventSink

	width, height float64

	buildings   []*Building
	generations []int
	depthBuf    []*Building

	stars  *StarSystem
	steam  *SteamSystem
	rain   *RainSystem
	clouds *CloudSystem

	speed      float64
	speedTween *gween.Tween

	frame uint64
	debug bool

	script *ScriptRunner
	// ScreenshotFunc, when set, is called for screenshot steps of an
	// attached script.
	ScreenshotFunc func(label string)
}

// NewScene validates cfg and builds a scene for a viewport of the given
// size.
func NewScene(cfg Config, width, height float64, opts ...Option) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	s := &Scene{
		cfg:    cfg,
		width:  width,
		height: height,
		speed:  cfg.BaseSpeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(NewSeed())
	}

	c := &s.cfg
	s.buildings = make([]*Building, c.BuildingCount)
	s.generations = make([]int, c.BuildingCount)
	s.depthBuf = make([]*Building, 0, c.BuildingCount)
	for i := range s.buildings {
		side := 1.0
		if i%2 == 0 {
			side = -1
		}
		s.buildings[i] = NewBuilding(side, c, s.rng)
		s.generations[i] = s.buildings[i].Generation
	}

	if c.Stars {
		s.stars = NewStarSystem(c.StarCount, width, height, c, s.rng)
	}
	if c.Steam {
		s.steam = NewSteamSystem(c, s.rng)
	}
	s.rain = NewRainSystem(width, height, c, s.rng)
	if c.Rain {
		s.rain.Enable()
	}
	if c.Clouds {
		s.clouds = NewCloudSystem(width, height, c, s.rng)
	}
	return s, nil
}

// Config returns a copy of the scene's configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// Update advances the whole scene by dt seconds.
func (s *Scene) Update(dt float64) {
	if s.script != nil {
		s.script.step(s)
	}

	if s.speedTween != nil {
		v, done := s.speedTween.Update(float32(dt))
		s.speed = float64(v)
		if done {
			s.speedTween = nil
		}
	}

	for i, b := range s.buildings {
		b.Update(dt, s.speed)
		if b.Generation != s.generations[i] {
			s.generations[i] = b.Generation
			s.emit(SceneEvent{Type: EventBuildingRecycled, Building: i, Side: b.Side, Z: b.Z})
		}
	}

	if s.stars != nil {
		s.stars.Update(dt, s.speed)
	}
	if s.steam != nil {
		s.steam.UpdateAndSpawn(dt)
	}
	s.rain.Update(dt, s.speed)
	if s.clouds != nil {
		s.clouds.Update(dt, s.speed)
	}

	s.frame++
	if s.debug && s.frame%debugLogInterval == 0 {
		s.debugLog(s.Stats())
	}
}

// Speed returns the current world speed.
func (s *Scene) Speed() float64 {
	return s.speed
}

// SetSpeed eases the world speed to target over duration seconds. A
// non-positive duration applies the target immediately.
func (s *Scene) SetSpeed(target float64, duration float64) {
	if target < 0 {
		target = 0
	}
	if duration <= 0 {
		s.speed = target
		s.speedTween = nil
		return
	}
	s.speedTween = gween.New(float32(s.speed), float32(target), float32(duration), ease.InOutQuad)
}

// Resize propagates new viewport bounds to the particle systems.
func (s *Scene) Resize(width, height float64) {
	s.width, s.height = width, height
	if s.stars != nil {
		s.stars.Resize(width, height)
	}
	s.rain.Resize(width, height)
	if s.clouds != nil {
		s.clouds.Resize(width, height)
	}
}

// Size returns the viewport bounds last passed to NewScene or Resize.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// TriggerPowerSurge surges one random building and returns it. It returns
// nil for a scene without buildings.
func (s *Scene) TriggerPowerSurge() *Building {
	if len(s.buildings) == 0 {
		return nil
	}
	i := pick(s.rng, len(s.buildings))
	b := s.buildings[i]
	b.TriggerPowerSurge()
	s.emit(SceneEvent{Type: EventPowerSurge, Building: i, Side: b.Side, Z: b.Z})
	return b
}

// TriggerCitySurge surges every building at once.
func (s *Scene) TriggerCitySurge() {
	for _, b := range s.buildings {
		b.TriggerPowerSurge()
	}
	s.emit(SceneEvent{Type: EventCitySurge, Building: -1})
}

// SetRain turns rain on or off. Setting the current state again is a no-op.
func (s *Scene) SetRain(on bool) {
	if on == s.rain.Enabled() {
		return
	}
	if on {
		s.rain.Enable()
		s.emit(SceneEvent{Type: EventRainOn, Building: -1})
		return
	}
	s.rain.Disable()
	s.emit(SceneEvent{Type: EventRainOff, Building: -1})
}

// ToggleRain flips rain and reports the new state.
func (s *Scene) ToggleRain() bool {
	s.SetRain(!s.rain.Enabled())
	return s.rain.Enabled()
}

// Raining reports whether rain is on.
func (s *Scene) Raining() bool {
	return s.rain.Enabled()
}

// Buildings returns the building slots in creation order.
func (s *Scene) Buildings() []*Building {
	return s.buildings
}

// BuildingsByDepth returns the buildings ordered far to near, the order a
// painter's-algorithm renderer draws them in. The returned slice is reused by
// the next call.
func (s *Scene) BuildingsByDepth() []*Building {
	s.depthBuf = append(s.depthBuf[:0], s.buildings...)
	slices.SortFunc(s.depthBuf, func(a, b *Building) int {
		da, db := a.Distance(), b.Distance()
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		default:
			return 0
		}
	})
	return s.depthBuf
}

// Stars returns the active stars, or nil when stars are disabled.
func (s *Scene) Stars() []*Star {
	if s.stars == nil {
		return nil
	}
	return s.stars.Stars()
}

// SteamParticles returns the active steam puffs, or nil when steam is
// disabled.
func (s *Scene) SteamParticles() []*SteamParticle {
	if s.steam == nil {
		return nil
	}
	return s.steam.Particles()
}

// RainDrops returns the active rain drops.
func (s *Scene) RainDrops() []*RainDrop {
	return s.rain.RainDrops()
}

// Clouds returns the clouds, or nil when clouds are disabled.
func (s *Scene) Clouds() []*Cloud {
	if s.clouds == nil {
		return nil
	}
	return s.clouds.Clouds()
}

// Stats returns a snapshot of per-system activity.
func (s *Scene) Stats() Stats {
	st := Stats{
		Frame:     s.frame,
		Speed:     s.speed,
		Buildings: len(s.buildings),
		Rain:      s.rain.Len(),
	}
	if s.stars != nil {
		st.Stars = s.stars.Len()
	}
	if s.steam != nil {
		st.Steam = s.steam.Len()
	}
	if s.clouds != nil {
		st.Clouds = s.clouds.Len()
	}
	return st
}

func (s *Scene) emit(e SceneEvent) {
	if s.sink == nil {
		return
	}
	e.Frame = s.frame
	s.sink.EmitEvent(e)
}
