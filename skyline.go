package skyline

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Vec3 is a world-space point. X grows to the right of the road, Y grows up
// from the ground plane, and Z grows away from the camera.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle in screen space with its origin at the
// top-left and Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Rand is the random source every procedural decision draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

// NewSeed returns a high-entropy seed read from crypto/rand. If the system
// source fails, a seed from the runtime-seeded math/rand/v2 generator is used.
func NewSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewRand returns a PCG generator for the given seed. Two generators built
// from the same seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// Range is a closed min/max interval used for every uniformly drawn
// attribute in Config.
type Range struct {
	Min float64 `env:"MIN"`
	Max float64 `env:"MAX"`
}

// Random returns a value in [Min, Max] drawn from rng. A degenerate range
// returns Min without consuming a draw.
func (r Range) Random(rng Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// chance reports whether a single Bernoulli trial with probability p succeeds.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// pick returns an index in [0, n) drawn from rng.
func pick(rng Rand, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// BuildingType classifies a building. The type gates which decorative
// features may be rolled.
type BuildingType uint8

const (
	Residential BuildingType = iota // plain block, windows and optional sign only
	Commercial                      // may carry billboards and searchlights
	Tower                           // tall block; may carry light waves
)

// String returns the lowercase type name.
func (t BuildingType) String() string {
	switch t {
	case Residential:
		return "residential"
	case Commercial:
		return "commercial"
	case Tower:
		return "tower"
	default:
		return "unknown"
	}
}

// RooftopType selects the accessory drawn on top of a building.
type RooftopType uint8

const (
	RooftopNone    RooftopType = iota // flat roof
	RooftopAntenna                    // blinking mast
	RooftopHelipad                    // landing pad with marker lights
	RooftopDish                       // satellite dish
)

// rooftopKinds lists the accessories a rooftop roll chooses between.
var rooftopKinds = [...]RooftopType{RooftopAntenna, RooftopHelipad, RooftopDish}

// String returns the lowercase rooftop name.
func (r RooftopType) String() string {
	switch r {
	case RooftopAntenna:
		return "antenna"
	case RooftopHelipad:
		return "helipad"
	case RooftopDish:
		return "dish"
	default:
		return "none"
	}
}

// LightWaveNone marks a building without an animated light-wave facade.
// Enabled buildings carry a pattern index in [0, Config.LightWavePatterns).
const LightWaveNone = -1

// signTexts is the pool of neon sign strings a building may display.
var signTexts = [...]string{
	"NEON", "RAMEN", "HOTEL", "BAR", "CYBER", "DATA", "NOODLE", "SYNTH",
	"OPEN 24H", "ARCADE", "CLINIC", "KARAOKE", "PACHINKO", "NET CAFE",
}

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventBuildingRecycled EventType = iota // a building passed the near plane and regenerated
	EventPowerSurge                        // a single building was surged
	EventCitySurge                         // every building was surged
	EventRainOn                            // rain was enabled
	EventRainOff                           // rain was disabled
)

// String returns a short event name.
func (e EventType) String() string {
	switch e {
	case EventBuildingRecycled:
		return "building_recycled"
	case EventPowerSurge:
		return "power_surge"
	case EventCitySurge:
		return "city_surge"
	case EventRainOn:
		return "rain_on"
	case EventRainOff:
		return "rain_off"
	default:
		return "unknown"
	}
}
