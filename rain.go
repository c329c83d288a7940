package skyline

// RainDrop is a falling streak. VY is negative; VX is wind drift.
type RainDrop struct {
	Particle
	VX, VY float64
	Length float64
}

// RainSystem is a toggled rain curtain. Drops that leave the volume are
// rewritten in place rather than released and reacquired.
type RainSystem struct {
	pool          *ParticlePool[RainDrop, *RainDrop]
	cfg           *Config
	rng           Rand
	width, height float64
	enabled       bool
}

// NewRainSystem creates a disabled rain system with room for cfg.RainCount
// drops.
func NewRainSystem(width, height float64, cfg *Config, rng Rand) *RainSystem {
	r := &RainSystem{cfg: cfg, rng: rng, width: width, height: height}
	r.pool = NewParticlePool(cfg.RainCount, r.spawn)
	return r
}

func (r *RainSystem) spawn(d *RainDrop) {
	r.respawn(d)
	d.Y = r.rng.Float64() * r.height
	d.VX = r.cfg.RainWind.Random(r.rng)
	d.VY = -r.cfg.RainSpeed.Random(r.rng)
	d.Length = r.cfg.RainLength.Random(r.rng)
}

// respawn moves a drop back to the top of the curtain with a fresh X and Z.
func (r *RainSystem) respawn(d *RainDrop) {
	d.X = (r.rng.Float64()*2 - 1) * r.width
	d.Y = r.height
	d.Z = r.cfg.RainNearPlane + r.rng.Float64()*r.cfg.CityDepth
}

// Enable turns rain on and fills the pool at once.
func (r *RainSystem) Enable() {
	r.enabled = true
	for i := 0; i < r.cfg.RainCount; i++ {
		if r.pool.Acquire() == nil {
			break
		}
	}
}

// Disable turns rain off. Every drop disappears immediately.
func (r *RainSystem) Disable() {
	r.enabled = false
	r.pool.Clear()
}

// Toggle flips the rain state and reports the new state.
func (r *RainSystem) Toggle() bool {
	if r.enabled {
		r.Disable()
	} else {
		r.Enable()
	}
	return r.enabled
}

// Enabled reports whether rain is on.
func (r *RainSystem) Enabled() bool {
	return r.enabled
}

// Update scrolls and drops every drop while rain is on.
func (r *RainSystem) Update(dt, speed float64) {
	if !r.enabled {
		return
	}
	r.pool.Each(func(d *RainDrop) bool {
		d.Z -= speed * dt
		d.Y += d.VY * dt
		d.X += d.VX * dt
		if d.Y < 0 || d.Z < r.cfg.RainNearPlane {
			r.respawn(d)
		}
		return true
	})
}

// Resize updates the curtain bounds used by respawns.
func (r *RainSystem) Resize(width, height float64) {
	r.width, r.height = width, height
}

// RainDrops returns the active drops. It is empty while rain is off.
func (r *RainSystem) RainDrops() []*RainDrop {
	return r.pool.Active()
}

// Len returns the number of active drops.
func (r *RainSystem) Len() int {
	return r.pool.ActiveCount()
}
