package skyline

// Star is a background point light. Size and Speed are fixed for the life
// of the star; only its position changes when it wraps.
type Star struct {
	Particle
	Size float64
	// Speed damps world speed per star to fake parallax depth.
	Speed float64
}

// StarSystem is the parallax star field behind the skyline.
type StarSystem struct {
	pool          *ParticlePool[Star, *Star]
	cfg           *Config
	rng           Rand
	width, height float64
}

// NewStarSystem creates count stars spread over the whole star volume.
func NewStarSystem(count int, width, height float64, cfg *Config, rng Rand) *StarSystem {
	s := &StarSystem{cfg: cfg, rng: rng, width: width, height: height}
	s.pool = NewParticlePool(count, s.spawn)
	for i := 0; i < count; i++ {
		s.pool.Acquire()
	}
	return s
}

func (s *StarSystem) spawn(star *Star) {
	s.place(star)
	star.Z = s.cfg.StarDepthMin + s.rng.Float64()*s.cfg.CityDepth
	star.Size = s.cfg.StarSize.Random(s.rng)
	star.Speed = s.cfg.StarSpeed.Random(s.rng)
}

// place rerolls the lateral and vertical position inside the current bounds.
func (s *StarSystem) place(star *Star) {
	star.X = (s.rng.Float64()*2 - 1) * s.width * 2
	star.Y = s.height*0.25 + s.rng.Float64()*s.height*1.5
}

// Update scrolls every star toward the camera. A star that passes
// StarDepthMin wraps to the back of the volume with a new X and Y only.
func (s *StarSystem) Update(dt, speed float64) {
	s.pool.Each(func(star *Star) bool {
		star.Z -= speed * dt * star.Speed * 0.3
		if star.Z < s.cfg.StarDepthMin {
			star.Z = s.cfg.CityDepth + s.cfg.StarDepthMin
			s.place(star)
		}
		return true
	})
}

// Resize updates the bounds used by future respawns. Live stars keep their
// positions.
func (s *StarSystem) Resize(width, height float64) {
	s.width, s.height = width, height
}

// Stars returns the active stars.
func (s *StarSystem) Stars() []*Star {
	return s.pool.Active()
}

// Len returns the number of active stars.
func (s *StarSystem) Len() int {
	return s.pool.ActiveCount()
}
