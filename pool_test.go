package skyline

import "testing"

type testParticle struct {
	Particle
	Value int
}

func TestPoolCreatesFixedCapacity(t *testing.T) {
	pool := NewParticlePool[testParticle](50, nil)
	if pool.Cap() != 50 {
		t.Errorf("Cap = %d, want 50", pool.Cap())
	}
	if pool.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0", pool.ActiveCount())
	}
	if len(pool.Active()) != 0 {
		t.Errorf("len(Active) = %d, want 0", len(pool.Active()))
	}
}

func TestPoolNegativeSize(t *testing.T) {
	pool := NewParticlePool[testParticle](-3, nil)
	if pool.Cap() != 0 {
		t.Errorf("Cap = %d, want 0", pool.Cap())
	}
	if pool.Acquire() != nil {
		t.Error("Acquire on empty pool should return nil")
	}
}

func TestPoolSaturation(t *testing.T) {
	const n = 8
	pool := NewParticlePool[testParticle](n, nil)
	for i := 0; i < n; i++ {
		if pool.Acquire() == nil {
			t.Fatalf("Acquire %d returned nil before saturation", i)
		}
	}
	if p := pool.Acquire(); p != nil {
		t.Errorf("Acquire %d = %v, want nil", n+1, p)
	}
	if pool.ActiveCount() != n {
		t.Errorf("ActiveCount = %d, want %d", pool.ActiveCount(), n)
	}
	if len(pool.Active()) != n {
		t.Errorf("len(Active) = %d, want %d", len(pool.Active()), n)
	}
}

func TestPoolAcquireAppliesReset(t *testing.T) {
	calls := 0
	pool := NewParticlePool(4, func(p *testParticle) {
		calls++
		p.Value = 7
		p.X = 3
	})
	p := pool.Acquire()
	if calls != 1 {
		t.Errorf("reset calls = %d, want 1", calls)
	}
	if p.Value != 7 || p.X != 3 {
		t.Errorf("reset not applied: %+v", p)
	}
	if !p.Active {
		t.Error("acquired particle should be active")
	}
}

func TestPoolResetMayOverwriteRecord(t *testing.T) {
	pool := NewParticlePool(2, func(p *testParticle) {
		*p = testParticle{Value: 1}
	})
	p := pool.Acquire()
	if !p.Active {
		t.Error("pool must keep the record active after a full overwrite")
	}
	pool.Release(p)
	if pool.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0 after release", pool.ActiveCount())
	}
}

func TestPoolFirstAcquireIsSlotZero(t *testing.T) {
	pool := NewParticlePool[testParticle](3, nil)
	a := pool.Acquire()
	b := pool.Acquire()
	if a.slot != 0 || b.slot != 1 {
		t.Errorf("slots = %d, %d, want 0, 1", a.slot, b.slot)
	}
}

func TestPoolReleaseReusesSlot(t *testing.T) {
	pool := NewParticlePool[testParticle](3, nil)
	a := pool.Acquire()
	pool.Acquire()
	pool.Release(a)
	if a.Active {
		t.Error("released particle should be inactive")
	}
	c := pool.Acquire()
	if c != a {
		t.Error("Acquire after Release should reuse the freed record")
	}
}

func TestPoolReleaseKeepsFields(t *testing.T) {
	pool := NewParticlePool[testParticle](1, nil)
	p := pool.Acquire()
	p.Value = 99
	p.Z = 12
	pool.Release(p)
	if p.Value != 99 || p.Z != 12 {
		t.Errorf("Release cleared fields: %+v", p)
	}
}

func TestPoolDoubleReleaseIsNoop(t *testing.T) {
	pool := NewParticlePool[testParticle](2, nil)
	p := pool.Acquire()
	pool.Release(p)
	pool.Release(p)
	if pool.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0", pool.ActiveCount())
	}
	// A double release must not push the slot twice.
	a, b := pool.Acquire(), pool.Acquire()
	if a == nil || b == nil || a == b {
		t.Fatalf("expected two distinct records, got %p and %p", a, b)
	}
	if pool.Acquire() != nil {
		t.Error("pool should be saturated")
	}
}

func TestPoolReleaseForeignIsNoop(t *testing.T) {
	pool := NewParticlePool[testParticle](2, nil)
	other := NewParticlePool[testParticle](2, nil)
	pool.Acquire()
	foreign := other.Acquire()
	pool.Release(foreign)
	pool.Release(nil)
	if pool.ActiveCount() != 1 {
		t.Errorf("ActiveCount = %d, want 1", pool.ActiveCount())
	}
	if !foreign.Active {
		t.Error("foreign record should stay active")
	}
}

func TestPoolClear(t *testing.T) {
	pool := NewParticlePool[testParticle](5, nil)
	var got []*testParticle
	for i := 0; i < 5; i++ {
		got = append(got, pool.Acquire())
	}
	pool.Clear()
	if pool.ActiveCount() != 0 || len(pool.Active()) != 0 {
		t.Errorf("after Clear: ActiveCount = %d, len(Active) = %d", pool.ActiveCount(), len(pool.Active()))
	}
	for i, p := range got {
		if p.Active {
			t.Errorf("record %d still active after Clear", i)
		}
	}
	for i := 0; i < 5; i++ {
		if pool.Acquire() == nil {
			t.Fatalf("Acquire %d after Clear returned nil", i)
		}
	}
}

func TestPoolActiveSlotOrder(t *testing.T) {
	pool := NewParticlePool[testParticle](4, nil)
	ps := []*testParticle{pool.Acquire(), pool.Acquire(), pool.Acquire(), pool.Acquire()}
	for i, p := range ps {
		p.Value = i
	}
	pool.Release(ps[1])

	active := pool.Active()
	want := []int{0, 2, 3}
	if len(active) != len(want) {
		t.Fatalf("len(Active) = %d, want %d", len(active), len(want))
	}
	for i, p := range active {
		if p.Value != want[i] {
			t.Errorf("Active[%d].Value = %d, want %d", i, p.Value, want[i])
		}
	}
}

func TestPoolActiveIsRecomputed(t *testing.T) {
	pool := NewParticlePool[testParticle](3, nil)
	pool.Acquire()
	first := pool.Active()
	pool.Acquire()
	if len(first) != 1 {
		t.Errorf("earlier result changed length to %d", len(first))
	}
	if len(pool.Active()) != 2 {
		t.Errorf("len(Active) = %d, want 2", len(pool.Active()))
	}
}

func TestPoolEachAllowsRelease(t *testing.T) {
	pool := NewParticlePool[testParticle](6, nil)
	for i := 0; i < 6; i++ {
		pool.Acquire().Value = i
	}
	visited := 0
	pool.Each(func(p *testParticle) bool {
		visited++
		if p.Value%2 == 0 {
			pool.Release(p)
		}
		return true
	})
	if visited != 6 {
		t.Errorf("visited = %d, want 6", visited)
	}
	if pool.ActiveCount() != 3 {
		t.Errorf("ActiveCount = %d, want 3", pool.ActiveCount())
	}
}

func TestPoolEachStops(t *testing.T) {
	pool := NewParticlePool[testParticle](5, nil)
	for i := 0; i < 5; i++ {
		pool.Acquire()
	}
	visited := 0
	pool.Each(func(p *testParticle) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}
