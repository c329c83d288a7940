package skyline

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// constRand returns the same value for every draw.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// testConfig returns the defaults with a seeded generator.
func testConfig() (*Config, Rand) {
	cfg := DefaultConfig()
	return &cfg, NewRand(42)
}
