package skyline

// Cloud is a distant haze band.
type Cloud struct {
	Particle
	Width, Height float64
	Opacity       float64
	Speed         float64
}

// CloudSystem is a permanently active backdrop of slow clouds.
type CloudSystem struct {
	pool          *ParticlePool[Cloud, *Cloud]
	cfg           *Config
	rng           Rand
	width, height float64
}

// NewCloudSystem creates cfg.CloudCount clouds. They are never released.
func NewCloudSystem(width, height float64, cfg *Config, rng Rand) *CloudSystem {
	c := &CloudSystem{cfg: cfg, rng: rng, width: width, height: height}
	c.pool = NewParticlePool(cfg.CloudCount, c.spawn)
	for i := 0; i < cfg.CloudCount; i++ {
		c.pool.Acquire()
	}
	return c
}

func (c *CloudSystem) spawn(cl *Cloud) {
	c.placeX(cl)
	cl.Y = c.height*0.8 + c.rng.Float64()*c.height*0.6
	cl.Z = c.cfg.CityDepth*0.5 + c.rng.Float64()*(c.cfg.CityDepth*0.5+c.cfg.CloudDepthOffset)
	cl.Width = c.cfg.CloudWidth.Random(c.rng)
	cl.Height = c.cfg.CloudHeight.Random(c.rng)
	cl.Opacity = c.cfg.CloudOpacity.Random(c.rng)
	cl.Speed = c.cfg.CloudSpeed.Random(c.rng)
}

func (c *CloudSystem) placeX(cl *Cloud) {
	cl.X = (c.rng.Float64()*2 - 1) * c.width * 3
}

// Update drifts the clouds toward the camera, heavily damped. A cloud that
// crosses the near plane wraps to the back with a new X only.
func (c *CloudSystem) Update(dt, speed float64) {
	c.pool.Each(func(cl *Cloud) bool {
		cl.Z -= speed * dt * cl.Speed * 0.1
		if cl.Z < c.cfg.NearCull {
			cl.Z = c.cfg.CityDepth + c.cfg.CloudDepthOffset
			c.placeX(cl)
		}
		return true
	})
}

// Resize updates the bounds used by future wraps.
func (c *CloudSystem) Resize(width, height float64) {
	c.width, c.height = width, height
}

// Clouds returns every cloud.
func (c *CloudSystem) Clouds() []*Cloud {
	return c.pool.Active()
}

// Len returns the number of clouds.
func (c *CloudSystem) Len() int {
	return c.pool.ActiveCount()
}
