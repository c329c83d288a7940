package skyline

import "testing"

func TestCloudSystemCount(t *testing.T) {
	cfg, rng := testConfig()
	c := NewCloudSystem(800, 600, cfg, rng)
	if c.Len() != cfg.CloudCount || len(c.Clouds()) != cfg.CloudCount {
		t.Fatalf("Len = %d, want %d", c.Len(), cfg.CloudCount)
	}
	for _, cl := range c.Clouds() {
		if cl.Opacity < cfg.CloudOpacity.Min || cl.Opacity > cfg.CloudOpacity.Max {
			t.Fatalf("Opacity = %v out of range", cl.Opacity)
		}
		if cl.Z < cfg.NearCull {
			t.Fatalf("Z = %v in front of the near plane", cl.Z)
		}
	}
}

func TestCloudSystemDampedDrift(t *testing.T) {
	cfg, rng := testConfig()
	c := NewCloudSystem(800, 600, cfg, rng)
	cl := c.Clouds()[0]
	cl.Z, cl.Speed = 1500, 0.5

	c.Update(1, 200)

	assertNear(t, "Z", cl.Z, 1500-200*0.5*0.1)
}

func TestCloudSystemWrap(t *testing.T) {
	cfg, rng := testConfig()
	c := NewCloudSystem(800, 600, cfg, rng)
	cl := c.Clouds()[0]
	cl.Z, cl.Speed = cfg.NearCull, 1
	y, w, h, op := cl.Y, cl.Width, cl.Height, cl.Opacity

	c.Update(1, 10)

	assertNear(t, "Z", cl.Z, cfg.CityDepth+cfg.CloudDepthOffset)
	if cl.Y != y || cl.Width != w || cl.Height != h || cl.Opacity != op {
		t.Error("wrap should only reroll X")
	}
	if cl.X < -2400 || cl.X > 2400 {
		t.Errorf("X = %v out of range", cl.X)
	}
	if c.Len() != cfg.CloudCount {
		t.Errorf("Len = %d, want %d", c.Len(), cfg.CloudCount)
	}
}
