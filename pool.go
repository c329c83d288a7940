package skyline

// Particle is the base record embedded by every pooled particle kind.
type Particle struct {
	X, Y, Z float64
	// Active is owned by the pool. It is true between Acquire and Release.
	Active bool

	slot int
}

func (p *Particle) base() *Particle { return p }

// pooled is satisfied by a pointer to any struct embedding Particle.
type pooled[T any] interface {
	*T
	base() *Particle
}

// ParticlePool is a fixed-capacity set of reusable particle records. Records
// live in one contiguous slice allocated at construction and are never freed;
// they are only flagged active or inactive. Free slots are kept on a stack so
// Acquire and Release are O(1).
type ParticlePool[T any, P pooled[T]] struct {
	items  []T
	free   []int
	reset  func(P)
	active int
}

// NewParticlePool creates a pool of size records. reset is applied to a
// record every time it is acquired; it may be nil.
func NewParticlePool[T any, P pooled[T]](size int, reset func(P)) *ParticlePool[T, P] {
	if size < 0 {
		size = 0
	}
	pool := &ParticlePool[T, P]{
		items: make([]T, size),
		free:  make([]int, 0, size),
		reset: reset,
	}
	for i := range pool.items {
		P(&pool.items[i]).base().slot = i
	}
	pool.refill()
	return pool
}

// refill pushes every slot onto the free stack so slot 0 is popped first.
func (pool *ParticlePool[T, P]) refill() {
	pool.free = pool.free[:0]
	for i := len(pool.items) - 1; i >= 0; i-- {
		pool.free = append(pool.free, i)
	}
}

// Acquire activates a free record, applies the reset callback and returns
// it. It returns nil when the pool is saturated; callers treat that as a
// silently skipped spawn.
func (pool *ParticlePool[T, P]) Acquire() P {
	n := len(pool.free)
	if n == 0 {
		return nil
	}
	i := pool.free[n-1]
	pool.free = pool.free[:n-1]

	p := P(&pool.items[i])
	if pool.reset != nil {
		pool.reset(p)
	}
	// The callback may overwrite the whole record, so the pool's own fields
	// are restored afterwards.
	b := p.base()
	b.Active = true
	b.slot = i
	pool.active++
	return p
}

// Release returns p to the pool. Fields are left as they are. Releasing a
// record that is inactive or belongs to another pool does nothing.
func (pool *ParticlePool[T, P]) Release(p P) {
	if p == nil {
		return
	}
	b := p.base()
	i := b.slot
	if i < 0 || i >= len(pool.items) || P(&pool.items[i]) != p || !b.Active {
		return
	}
	b.Active = false
	pool.free = append(pool.free, i)
	pool.active--
}

// Active returns the currently active records in slot order. The slice is
// rebuilt on every call.
func (pool *ParticlePool[T, P]) Active() []P {
	out := make([]P, 0, pool.active)
	for i := range pool.items {
		p := P(&pool.items[i])
		if p.base().Active {
			out = append(out, p)
		}
	}
	return out
}

// Each calls fn for every active record in slot order until fn returns
// false. fn may Release the record it is given.
func (pool *ParticlePool[T, P]) Each(fn func(P) bool) {
	for i := range pool.items {
		p := P(&pool.items[i])
		if !p.base().Active {
			continue
		}
		if !fn(p) {
			return
		}
	}
}

// Clear marks every record inactive.
func (pool *ParticlePool[T, P]) Clear() {
	for i := range pool.items {
		P(&pool.items[i]).base().Active = false
	}
	pool.active = 0
	pool.refill()
}

// ActiveCount returns the number of active records.
func (pool *ParticlePool[T, P]) ActiveCount() int {
	return pool.active
}

// Cap returns the fixed capacity of the pool.
func (pool *ParticlePool[T, P]) Cap() int {
	return len(pool.items)
}
