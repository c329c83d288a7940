package skyline

import (
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("ConfigFromEnv without variables should equal DefaultConfig")
	}
}

func TestConfigFromEnvOverlay(t *testing.T) {
	t.Setenv("SKYLINE_BUILDING_COUNT", "24")
	t.Setenv("SKYLINE_BASE_SPEED", "400")
	t.Setenv("SKYLINE_BUILDING_HEIGHT_MAX", "500")
	t.Setenv("SKYLINE_RAIN", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.BuildingCount != 24 {
		t.Errorf("BuildingCount = %d, want 24", cfg.BuildingCount)
	}
	if cfg.BaseSpeed != 400 {
		t.Errorf("BaseSpeed = %v, want 400", cfg.BaseSpeed)
	}
	if cfg.BuildingHeight.Max != 500 {
		t.Errorf("BuildingHeight.Max = %v, want 500", cfg.BuildingHeight.Max)
	}
	if cfg.BuildingHeight.Min != DefaultConfig().BuildingHeight.Min {
		t.Errorf("BuildingHeight.Min = %v, want default", cfg.BuildingHeight.Min)
	}
	if !cfg.Rain {
		t.Error("Rain = false, want true")
	}
}

func TestConfigFromEnvParseError(t *testing.T) {
	t.Setenv("SKYLINE_STAR_COUNT", "lots")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error")
	} else if !strings.Contains(err.Error(), "parse env") {
		t.Errorf("error = %v, want parse env prefix", err)
	}
}

func TestConfigFromEnvValidates(t *testing.T) {
	t.Setenv("SKYLINE_LOD_DISTANCE_MID", "2000")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected validation error for mid > far")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"city depth", func(c *Config) { c.CityDepth = -1 }, "city depth"},
		{"window spacing", func(c *Config) { c.WindowSpacing = 0 }, "window spacing"},
		{"negative count", func(c *Config) { c.RainCount = -1 }, "rain count"},
		{"range order", func(c *Config) { c.SteamSize = Range{10, 2} }, "steam size"},
		{"probability", func(c *Config) { c.WindowLitChance = 1.5 }, "window lit chance"},
		{"type sum", func(c *Config) { c.TowerChance, c.CommercialChance = 0.6, 0.6 }, "tower+commercial"},
		{"steam jitter", func(c *Config) { c.SteamVentJitter = -1 }, "steam vent jitter"},
		{"steam offset", func(c *Config) { c.SteamVentOffset = -0.1 }, "steam vent offset"},
		{"lod order", func(c *Config) { c.LODDistanceMid = 5000 }, "lod mid distance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{10, 20}
	assertNear(t, "low", r.Random(constRand(0)), 10)
	assertNear(t, "mid", r.Random(constRand(0.5)), 15)

	// A degenerate range must not consume a draw.
	calls := 0
	counting := randFunc(func() float64 { calls++; return 0.5 })
	assertNear(t, "degenerate", Range{7, 7}.Random(counting), 7)
	if calls != 0 {
		t.Errorf("degenerate range drew %d times", calls)
	}
}

func TestPickBounds(t *testing.T) {
	if got := pick(constRand(0.9999999), 3); got != 2 {
		t.Errorf("pick = %d, want 2", got)
	}
	if got := pick(constRand(0.5), 1); got != 0 {
		t.Errorf("pick with n=1 = %d, want 0", got)
	}
	if got := pick(constRand(0.5), 0); got != 0 {
		t.Errorf("pick with n=0 = %d, want 0", got)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(5), NewRand(5)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if Tower.String() != "tower" || Residential.String() != "residential" {
		t.Error("BuildingType.String mismatch")
	}
	if RooftopDish.String() != "dish" || RooftopNone.String() != "none" {
		t.Error("RooftopType.String mismatch")
	}
	if EventRainOff.String() != "rain_off" {
		t.Error("EventType.String mismatch")
	}
}

type randFunc func() float64

func (f randFunc) Float64() float64 { return f() }
