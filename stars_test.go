package skyline

import "testing"

func TestStarSystemSpawnBounds(t *testing.T) {
	cfg, rng := testConfig()
	s := NewStarSystem(100, 800, 600, cfg, rng)
	if s.Len() != 100 || len(s.Stars()) != 100 {
		t.Fatalf("Len = %d, len(Stars) = %d, want 100", s.Len(), len(s.Stars()))
	}
	for _, st := range s.Stars() {
		if st.Z < cfg.StarDepthMin || st.Z > cfg.StarDepthMin+cfg.CityDepth {
			t.Fatalf("Z = %v out of range", st.Z)
		}
		if st.X < -1600 || st.X > 1600 {
			t.Fatalf("X = %v out of range", st.X)
		}
		if st.Y < 150 || st.Y > 1050 {
			t.Fatalf("Y = %v out of range", st.Y)
		}
		if st.Size < cfg.StarSize.Min || st.Size > cfg.StarSize.Max {
			t.Fatalf("Size = %v out of range", st.Size)
		}
		if st.Speed < cfg.StarSpeed.Min || st.Speed > cfg.StarSpeed.Max {
			t.Fatalf("Speed = %v out of range", st.Speed)
		}
	}
}

func TestStarSystemWrap(t *testing.T) {
	cfg, rng := testConfig()
	s := NewStarSystem(100, 800, 600, cfg, rng)
	star := s.Stars()[0]
	star.Z = cfg.StarDepthMin + 1
	star.Speed = 1
	size := star.Size

	s.Update(1, 260)

	assertNear(t, "Z", star.Z, cfg.CityDepth+cfg.StarDepthMin)
	if star.Size != size || star.Speed != 1 {
		t.Errorf("wrap changed size/speed: %v/%v", star.Size, star.Speed)
	}
	if s.Len() != 100 {
		t.Errorf("Len = %d after wrap, want 100", s.Len())
	}
}

func TestStarSystemParallax(t *testing.T) {
	cfg, rng := testConfig()
	s := NewStarSystem(2, 800, 600, cfg, rng)
	a, b := s.Stars()[0], s.Stars()[1]
	a.Z, b.Z = 2000, 2000
	a.Speed, b.Speed = 1, 0.5

	s.Update(0.5, 100)

	assertNear(t, "fast Z", a.Z, 2000-100*0.5*1*0.3)
	assertNear(t, "slow Z", b.Z, 2000-100*0.5*0.5*0.3)
}

func TestStarSystemResize(t *testing.T) {
	cfg := DefaultConfig()
	s := NewStarSystem(1, 800, 600, &cfg, constRand(1-1e-12))
	star := s.Stars()[0]
	s.Resize(100, 100)
	if s.Stars()[0].X < 1000 {
		t.Fatal("Resize moved a live star")
	}
	star.Z = cfg.StarDepthMin
	star.Speed = 1
	s.Update(1, 1)
	if star.X > 200 || star.Y > 175 {
		t.Errorf("wrap ignored new bounds: X=%v Y=%v", star.X, star.Y)
	}
}
