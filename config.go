package skyline

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every environment variable read by ConfigFromEnv.
const envPrefix = "SKYLINE_"

// Config is the parameter table for the whole engine. It separates what
// varies (ranges, probabilities, LOD thresholds) from the code that consumes
// it. Treat a Config as immutable once a Scene has been built from it.
type Config struct {
	// --- City layout ---

	// RoadWidth is the width of the central road in world units.
	RoadWidth float64 `env:"ROAD_WIDTH"`
	// LaneOffsetMultiplier scales RoadWidth into the gap between the road
	// center and the nearest building edge.
	LaneOffsetMultiplier float64 `env:"LANE_OFFSET_MULTIPLIER"`
	// Spread is the lateral band buildings are scattered across per side.
	Spread float64 `env:"SPREAD"`
	// CityDepth is the far edge of the simulated volume.
	CityDepth float64 `env:"CITY_DEPTH"`
	// NearCull is the z a building's back face must pass before it recycles.
	NearCull float64 `env:"NEAR_CULL"`
	// SpawnMargin is added to every spawn z so nothing appears on the camera.
	SpawnMargin float64 `env:"SPAWN_MARGIN"`
	// RespawnJitter is the random depth band beyond the far edge used on
	// regeneration.
	RespawnJitter float64 `env:"RESPAWN_JITTER"`
	// BuildingCount is the fixed number of building slots a Scene owns.
	BuildingCount int `env:"BUILDING_COUNT"`
	// BaseSpeed is the initial forward travel speed in world units per second.
	BaseSpeed float64 `env:"BASE_SPEED"`

	// --- Building geometry and type ---

	BuildingWidth  Range `envPrefix:"BUILDING_WIDTH_"`
	BuildingDepth  Range `envPrefix:"BUILDING_DEPTH_"`
	BuildingHeight Range `envPrefix:"BUILDING_HEIGHT_"`
	// TowerChance and CommercialChance are cumulative thresholds over a
	// single roll; whatever remains is residential.
	TowerChance           float64 `env:"TOWER_CHANCE"`
	CommercialChance      float64 `env:"COMMERCIAL_CHANCE"`
	TowerHeightMultiplier float64 `env:"TOWER_HEIGHT_MULTIPLIER"`

	// --- Windows ---

	WindowSpacing   float64 `env:"WINDOW_SPACING"`
	WindowRowHeight float64 `env:"WINDOW_ROW_HEIGHT"`
	WindowLitChance float64 `env:"WINDOW_LIT_CHANCE"`

	// --- Decorative features ---

	SignChance        float64 `env:"SIGN_CHANCE"`
	RooftopChance     float64 `env:"ROOFTOP_CHANCE"`
	BillboardChance   float64 `env:"BILLBOARD_CHANCE"`
	BillboardPatterns int     `env:"BILLBOARD_PATTERNS"`
	LightWaveChance   float64 `env:"LIGHT_WAVE_CHANCE"`
	LightWavePatterns int     `env:"LIGHT_WAVE_PATTERNS"`
	LightWaveSpeed    Range   `envPrefix:"LIGHT_WAVE_SPEED_"`
	SearchlightChance float64 `env:"SEARCHLIGHT_CHANCE"`
	// SearchlightMinHeight is the height a building must exceed to carry a
	// searchlight.
	SearchlightMinHeight float64 `env:"SEARCHLIGHT_MIN_HEIGHT"`
	SearchlightSpeed     Range   `envPrefix:"SEARCHLIGHT_SPEED_"`
	// PowerSurgeDuration is the length of the surge animation window in seconds.
	PowerSurgeDuration float64 `env:"POWER_SURGE_DURATION"`

	// --- Level of detail ---

	LODDistanceMid     float64 `env:"LOD_DISTANCE_MID"`
	LODDistanceFar     float64 `env:"LOD_DISTANCE_FAR"`
	LODWindowReduction float64 `env:"LOD_WINDOW_REDUCTION"`

	// --- Stars ---

	StarCount    int     `env:"STAR_COUNT"`
	StarDepthMin float64 `env:"STAR_DEPTH_MIN"`
	StarSize     Range   `envPrefix:"STAR_SIZE_"`
	StarSpeed    Range   `envPrefix:"STAR_SPEED_"`

	// --- Steam ---

	SteamVents int `env:"STEAM_VENTS"`
	// SteamVentOffset places vents at this fraction of RoadWidth either side
	// of the road center.
	SteamVentOffset float64 `env:"STEAM_VENT_OFFSET"`
	// SteamVentJitter bounds how far a puff spawns from its vent on X and Z.
	SteamVentJitter   float64 `env:"STEAM_VENT_JITTER"`
	SteamMaxParticles int     `env:"STEAM_MAX_PARTICLES"`
	SteamSpawnChance  float64 `env:"STEAM_SPAWN_CHANCE"`
	SteamRiseSpeed    float64 `env:"STEAM_RISE_SPEED"`
	SteamExpandRate   float64 `env:"STEAM_EXPAND_RATE"`
	// SteamDrift is the maximum horizontal jitter per second.
	SteamDrift  float64 `env:"STEAM_DRIFT"`
	SteamMaxAge Range   `envPrefix:"STEAM_MAX_AGE_"`
	SteamSize   Range   `envPrefix:"STEAM_SIZE_"`

	// --- Rain ---

	RainCount int `env:"RAIN_COUNT"`
	// RainSpeed is the fall speed range; drops move toward negative Y.
	RainSpeed Range `envPrefix:"RAIN_SPEED_"`
	// RainWind is the horizontal drift range.
	RainWind      Range   `envPrefix:"RAIN_WIND_"`
	RainLength    Range   `envPrefix:"RAIN_LENGTH_"`
	RainNearPlane float64 `env:"RAIN_NEAR_PLANE"`

	// --- Clouds ---

	CloudCount       int     `env:"CLOUD_COUNT"`
	CloudDepthOffset float64 `env:"CLOUD_DEPTH_OFFSET"`
	CloudWidth       Range   `envPrefix:"CLOUD_WIDTH_"`
	CloudHeight      Range   `envPrefix:"CLOUD_HEIGHT_"`
	CloudOpacity     Range   `envPrefix:"CLOUD_OPACITY_"`
	CloudSpeed       Range   `envPrefix:"CLOUD_SPEED_"`

	// --- Effect toggles ---

	Stars  bool `env:"STARS"`
	Steam  bool `env:"STEAM"`
	Rain   bool `env:"RAIN"`
	Clouds bool `env:"CLOUDS"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		RoadWidth:            120,
		LaneOffsetMultiplier: 0.75,
		Spread:               420,
		CityDepth:            2200,
		NearCull:             40,
		SpawnMargin:          80,
		RespawnJitter:        400,
		BuildingCount:        60,
		BaseSpeed:            260,

		BuildingWidth:         Range{40, 140},
		BuildingDepth:         Range{40, 140},
		BuildingHeight:        Range{60, 260},
		TowerChance:           0.15,
		CommercialChance:      0.35,
		TowerHeightMultiplier: 1.8,

		WindowSpacing:   12,
		WindowRowHeight: 16,
		WindowLitChance: 0.55,

		SignChance:           0.3,
		RooftopChance:        0.5,
		BillboardChance:      0.35,
		BillboardPatterns:    4,
		LightWaveChance:      0.45,
		LightWavePatterns:    3,
		LightWaveSpeed:       Range{0.5, 2.0},
		SearchlightChance:    0.4,
		SearchlightMinHeight: 200,
		SearchlightSpeed:     Range{0.3, 1.2},
		PowerSurgeDuration:   0.5,

		LODDistanceMid:     900,
		LODDistanceFar:     1600,
		LODWindowReduction: 0.5,

		StarCount:    100,
		StarDepthMin: 800,
		StarSize:     Range{0.5, 2},
		StarSpeed:    Range{0.2, 1},

		SteamVents:        6,
		SteamVentOffset:   0.4,
		SteamVentJitter:   4,
		SteamMaxParticles: 150,
		SteamSpawnChance:  0.3,
		SteamRiseSpeed:    30,
		SteamExpandRate:   8,
		SteamDrift:        10,
		SteamMaxAge:       Range{2, 4},
		SteamSize:         Range{6, 14},

		RainCount:     200,
		RainSpeed:     Range{400, 700},
		RainWind:      Range{-40, -10},
		RainLength:    Range{10, 25},
		RainNearPlane: 50,

		CloudCount:       12,
		CloudDepthOffset: 1000,
		CloudWidth:       Range{300, 700},
		CloudHeight:      Range{60, 160},
		CloudOpacity:     Range{0.05, 0.2},
		CloudSpeed:       Range{0.2, 1},

		Stars:  true,
		Steam:  true,
		Rain:   false,
		Clouds: true,
	}
}

// ConfigFromEnv returns DefaultConfig overlaid with any SKYLINE_* environment
// variables that are set. Unset variables keep their default. Range fields
// use _MIN/_MAX suffixes, e.g. SKYLINE_BUILDING_HEIGHT_MAX.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every setting that would break an engine invariant.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}
	ordered := func(name string, r Range) {
		if r.Min > r.Max {
			errs = append(errs, fmt.Errorf("%s min %v exceeds max %v", name, r.Min, r.Max))
		}
	}
	probability := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", name, p))
		}
	}

	positive("city depth", c.CityDepth)
	positive("window spacing", c.WindowSpacing)
	positive("window row height", c.WindowRowHeight)
	positive("star depth min", c.StarDepthMin)
	nonNegative("building count", float64(c.BuildingCount))
	nonNegative("star count", float64(c.StarCount))
	nonNegative("steam vents", float64(c.SteamVents))
	nonNegative("steam vent offset", c.SteamVentOffset)
	nonNegative("steam vent jitter", c.SteamVentJitter)
	nonNegative("steam max particles", float64(c.SteamMaxParticles))
	nonNegative("rain count", float64(c.RainCount))
	nonNegative("cloud count", float64(c.CloudCount))

	ordered("building width", c.BuildingWidth)
	ordered("building depth", c.BuildingDepth)
	ordered("building height", c.BuildingHeight)
	ordered("light wave speed", c.LightWaveSpeed)
	ordered("searchlight speed", c.SearchlightSpeed)
	ordered("star size", c.StarSize)
	ordered("star speed", c.StarSpeed)
	ordered("steam max age", c.SteamMaxAge)
	ordered("steam size", c.SteamSize)
	ordered("rain speed", c.RainSpeed)
	ordered("rain wind", c.RainWind)
	ordered("rain length", c.RainLength)
	ordered("cloud width", c.CloudWidth)
	ordered("cloud height", c.CloudHeight)
	ordered("cloud opacity", c.CloudOpacity)
	ordered("cloud speed", c.CloudSpeed)

	probability("tower chance", c.TowerChance)
	probability("commercial chance", c.CommercialChance)
	probability("tower+commercial chance", c.TowerChance+c.CommercialChance)
	probability("window lit chance", c.WindowLitChance)
	probability("lod window reduction", c.LODWindowReduction)

	if c.LODDistanceMid > c.LODDistanceFar {
		errs = append(errs, fmt.Errorf("lod mid distance %v exceeds far distance %v", c.LODDistanceMid, c.LODDistanceFar))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// laneOffset is the gap between the road center and the inner building edge.
func (c *Config) laneOffset() float64 {
	return c.RoadWidth * c.LaneOffsetMultiplier
}
