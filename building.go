package skyline

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Window is one cell of a building facade grid.
type Window struct {
	Col, Row int
	Lit      bool
	// FlickerSeed is a per-window constant in [0, 1) that renderers use to
	// desynchronize flicker. The engine never animates it.
	FlickerSeed float64
}

// Building is a procedurally generated city block. Buildings are never
// destroyed: when one scrolls past the near plane it regenerates in place
// beyond the far edge of the city.
type Building struct {
	// Side is -1 for the left of the road and +1 for the right.
	Side float64

	// X is the inner face, the edge nearest the road. The box extends
	// Side*Width outward from it.
	X                    float64
	Width, Depth, Height float64
	// Z is the depth of the front face. It decreases as the city scrolls.
	Z float64

	Type BuildingType

	WindowCols, WindowRows int
	Windows                []Window

	HasSign  bool
	SignText string

	Rooftop RooftopType

	HasBillboard     bool
	BillboardPattern int
	BillboardPhase   float64

	// LightWavePattern is LightWaveNone when the facade has no light wave.
	LightWavePattern int
	LightWaveSpeed   float64

	HasSearchlight   bool
	SearchlightAngle float64
	SearchlightSpeed float64

	LightSequencePhase float64
	// PowerSurgeTime counts down from Config.PowerSurgeDuration to 0 after
	// TriggerPowerSurge.
	PowerSurgeTime float64

	// Hue is the neon accent hue in degrees.
	Hue float64

	// Generation increments on every Reset.
	Generation int

	cfg   *Config
	rng   Rand
	surge *gween.Tween
}

// NewBuilding creates a building on the given side of the road and runs its
// initial generation.
func NewBuilding(side float64, cfg *Config, rng Rand) *Building {
	b := &Building{Side: side, cfg: cfg, rng: rng}
	b.Reset(true)
	return b
}

// Reset rerolls every procedural attribute. An initial reset scatters the
// building across the whole city depth; a regeneration places it beyond the
// far edge.
func (b *Building) Reset(initial bool) {
	cfg, rng := b.cfg, b.rng

	b.X = b.Side * (cfg.laneOffset() + rng.Float64()*cfg.Spread)
	b.Width = cfg.BuildingWidth.Random(rng)
	b.Depth = cfg.BuildingDepth.Random(rng)
	b.Height = cfg.BuildingHeight.Random(rng)

	if initial {
		b.Z = rng.Float64()*cfg.CityDepth + cfg.SpawnMargin
	} else {
		b.Z = cfg.CityDepth + cfg.SpawnMargin + rng.Float64()*cfg.RespawnJitter
	}

	// One roll against cumulative thresholds.
	typeRoll := rng.Float64()
	switch {
	case typeRoll < cfg.TowerChance:
		b.Type = Tower
		b.Height *= cfg.TowerHeightMultiplier
	case typeRoll < cfg.TowerChance+cfg.CommercialChance:
		b.Type = Commercial
	default:
		b.Type = Residential
	}

	b.generateWindows()
	b.generateFeatures()

	b.Hue = rng.Float64() * 360
	b.LightSequencePhase = 0
	b.PowerSurgeTime = 0
	b.surge = nil
	b.Generation++
}

func (b *Building) generateWindows() {
	cfg, rng := b.cfg, b.rng

	b.WindowCols = int(math.Floor(b.Width / cfg.WindowSpacing))
	b.WindowRows = int(math.Floor(b.Height / cfg.WindowRowHeight))
	n := b.WindowCols * b.WindowRows
	if cap(b.Windows) >= n {
		b.Windows = b.Windows[:n]
	} else {
		b.Windows = make([]Window, n)
	}

	i := 0
	for row := 0; row < b.WindowRows; row++ {
		for col := 0; col < b.WindowCols; col++ {
			b.Windows[i] = Window{
				Col:         col,
				Row:         row,
				Lit:         chance(rng, cfg.WindowLitChance),
				FlickerSeed: rng.Float64(),
			}
			i++
		}
	}
}

func (b *Building) generateFeatures() {
	cfg, rng := b.cfg, b.rng

	b.HasSign = chance(rng, cfg.SignChance)
	b.SignText = ""
	if b.HasSign {
		b.SignText = signTexts[pick(rng, len(signTexts))]
	}

	b.Rooftop = RooftopNone
	if chance(rng, cfg.RooftopChance) {
		b.Rooftop = rooftopKinds[pick(rng, len(rooftopKinds))]
	}

	b.HasBillboard = false
	b.BillboardPattern, b.BillboardPhase = 0, 0
	if (b.Type == Commercial || b.Type == Tower) && chance(rng, cfg.BillboardChance) {
		b.HasBillboard = true
		b.BillboardPattern = pick(rng, cfg.BillboardPatterns)
		b.BillboardPhase = rng.Float64() * 2 * math.Pi
	}

	b.LightWavePattern, b.LightWaveSpeed = LightWaveNone, 0
	if b.Type == Tower && chance(rng, cfg.LightWaveChance) {
		b.LightWavePattern = pick(rng, cfg.LightWavePatterns)
		b.LightWaveSpeed = cfg.LightWaveSpeed.Random(rng)
	}

	b.HasSearchlight = false
	b.SearchlightAngle, b.SearchlightSpeed = 0, 0
	if (b.Type == Tower || b.Type == Commercial) && b.Height > cfg.SearchlightMinHeight &&
		chance(rng, cfg.SearchlightChance) {
		b.HasSearchlight = true
		b.SearchlightAngle = rng.Float64() * 2 * math.Pi
		b.SearchlightSpeed = cfg.SearchlightSpeed.Random(rng)
	}
}

// Update advances the building by dt seconds at the given world speed and
// regenerates it once its back face passes the near plane.
func (b *Building) Update(dt, speed float64) {
	b.Z -= speed * dt
	b.LightSequencePhase += dt * 0.5
	if b.HasSearchlight {
		b.SearchlightAngle += b.SearchlightSpeed * dt
	}

	if b.surge != nil {
		v, done := b.surge.Update(float32(dt))
		b.PowerSurgeTime = math.Max(float64(v), 0)
		if done {
			b.PowerSurgeTime = 0
			b.surge = nil
		}
	}

	if b.Z+b.Depth < b.cfg.NearCull {
		b.Reset(false)
	}
}

// TriggerPowerSurge arms the surge animation window. It only sets state;
// renderers read SurgeIntensity.
func (b *Building) TriggerPowerSurge() {
	d := b.cfg.PowerSurgeDuration
	b.PowerSurgeTime = d
	b.surge = gween.New(float32(d), 0, float32(d), ease.Linear)
}

// SurgeIntensity returns the remaining surge as a fraction in [0, 1].
func (b *Building) SurgeIntensity() float64 {
	if b.cfg.PowerSurgeDuration <= 0 {
		return 0
	}
	return math.Min(b.PowerSurgeTime/b.cfg.PowerSurgeDuration, 1)
}

// Distance returns the depth of the building's center, used for LOD and
// painter's ordering.
func (b *Building) Distance() float64 {
	return b.Z + b.Depth/2
}

// CenterX returns the lateral center of the footprint.
func (b *Building) CenterX() float64 {
	return b.X + b.Side*b.Width/2
}

// Vertices returns the eight box corners in world space: the front quad at Z
// then the back quad at Z+Depth, each ordered bottom-left, bottom-right,
// top-right, top-left.
func (b *Building) Vertices() [8]Vec3 {
	x0, x1 := b.X, b.X+b.Width
	if b.Side < 0 {
		x0, x1 = b.X-b.Width, b.X
	}
	z0, z1 := b.Z, b.Z+b.Depth
	h := b.Height
	return [8]Vec3{
		{x0, 0, z0}, {x1, 0, z0}, {x1, h, z0}, {x0, h, z0},
		{x0, 0, z1}, {x1, 0, z1}, {x1, h, z1}, {x0, h, z1},
	}
}

// ShouldRenderWindows reports whether windows are drawn at all at the given
// distance.
func (b *Building) ShouldRenderWindows(distance float64) bool {
	return distance <= b.cfg.LODDistanceFar
}

// WindowRenderRatio returns the fraction of windows to draw at the given
// distance: all of them up close, LODWindowReduction in the mid band and
// none beyond the far threshold.
func (b *Building) WindowRenderRatio(distance float64) float64 {
	switch {
	case distance > b.cfg.LODDistanceFar:
		return 0
	case distance > b.cfg.LODDistanceMid:
		return b.cfg.LODWindowReduction
	default:
		return 1
	}
}
