package skyline

// SteamParticle is a puff of vapor rising from a roadside vent.
type SteamParticle struct {
	Particle
	Age, MaxAge float64
	Size        float64
	// Vent is the index of the vent that emitted the puff.
	Vent int
}

// Vent is a fixed roadside steam source.
type Vent struct {
	X, Z float64
}

// SteamSystem emits steam from a fixed set of vents. Puffs are released back
// to the pool when they exceed their age.
type SteamSystem struct {
	pool  *ParticlePool[SteamParticle, *SteamParticle]
	vents []Vent
	cfg   *Config
	rng   Rand
}

// NewSteamSystem places cfg.SteamVents vents along the road, alternating
// sides and spaced evenly through the city depth.
func NewSteamSystem(cfg *Config, rng Rand) *SteamSystem {
	s := &SteamSystem{
		pool:  NewParticlePool[SteamParticle](cfg.SteamMaxParticles, nil),
		vents: make([]Vent, cfg.SteamVents),
		cfg:   cfg,
		rng:   rng,
	}
	for i := range s.vents {
		side := 1.0
		if i%2 == 0 {
			side = -1
		}
		s.vents[i] = Vent{
			X: side * cfg.RoadWidth * cfg.SteamVentOffset,
			Z: cfg.CityDepth * float64(i+1) / float64(len(s.vents)+1),
		}
	}
	return s
}

// Spawn gives every vent one chance to emit a puff. Spawns are dropped
// silently while the pool is saturated.
func (s *SteamSystem) Spawn() {
	for i, v := range s.vents {
		if !chance(s.rng, s.cfg.SteamSpawnChance) {
			continue
		}
		p := s.pool.Acquire()
		if p == nil {
			continue
		}
		p.X = v.X + (s.rng.Float64()*2-1)*s.cfg.SteamVentJitter
		p.Y = 0
		p.Z = v.Z + (s.rng.Float64()*2-1)*s.cfg.SteamVentJitter
		p.Age = 0
		p.MaxAge = s.cfg.SteamMaxAge.Random(s.rng)
		p.Size = s.cfg.SteamSize.Random(s.rng)
		p.Vent = i
	}
}

// Update ages, lifts, drifts and expands every puff, releasing the ones that
// outlived MaxAge.
func (s *SteamSystem) Update(dt float64) {
	s.pool.Each(func(p *SteamParticle) bool {
		p.Age += dt
		if p.Age > p.MaxAge {
			s.pool.Release(p)
			return true
		}
		p.Y += s.cfg.SteamRiseSpeed * dt
		p.X += (s.rng.Float64()*2 - 1) * s.cfg.SteamDrift * dt
		p.Size += s.cfg.SteamExpandRate * dt
		return true
	})
}

// UpdateAndSpawn is the per-frame entry point: age existing puffs, then emit.
func (s *SteamSystem) UpdateAndSpawn(dt float64) {
	s.Update(dt)
	s.Spawn()
}

// Particles returns the active puffs.
func (s *SteamSystem) Particles() []*SteamParticle {
	return s.pool.Active()
}

// Vents returns the vent positions.
func (s *SteamSystem) Vents() []Vent {
	return s.vents
}

// Len returns the number of active puffs.
func (s *SteamSystem) Len() int {
	return s.pool.ActiveCount()
}
