package game

import (
	"math/rand"
	"testing"
)

func TestRectIntersectsHalfOpen(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"one pixel in", Rect{X: 9, Y: 9, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 3, H: 3}, true},
		{"disjoint", Rect{X: 30, Y: -30, W: 10, H: 10}, false},
	}
	for _, tc := range cases {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Intersects(a); got != tc.want {
			t.Errorf("%s: Intersects not symmetric", tc.name)
		}
	}
}

func TestRectContainsPointInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 8, H: 8}
	for _, p := range []Point{{10, 20}, {18, 28}, {14, 24}} {
		if !r.ContainsPoint(p) {
			t.Errorf("expected %v inside %v", p, r)
		}
	}
	for _, p := range []Point{{9, 20}, {19, 28}, {14, 29}} {
		if r.ContainsPoint(p) {
			t.Errorf("expected %v outside %v", p, r)
		}
	}
}

func TestPathSaturates(t *testing.T) {
	p := NewPath(3)
	p.Reset(Point{X: 1, Y: 1})

	if !p.Append(PathPoint{Pos: Point{X: 2}}) || !p.Append(PathPoint{Pos: Point{X: 3}}) {
		t.Fatal("expected appends below capacity to succeed")
	}
	if p.Append(PathPoint{Pos: Point{X: 4}}) {
		t.Fatal("expected append on full path to be dropped")
	}
	if p.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", p.Len())
	}
	if last := p.Points()[2].Pos.X; last != 3 {
		t.Errorf("full path must not overwrite, last X = %d", last)
	}

	p.Reset(Point{X: 5, Y: 5})
	if p.Len() != 1 || p.Points()[0].Pos != (Point{X: 5, Y: 5}) {
		t.Errorf("reset should leave only the origin, got %+v", p.Points())
	}
}

func TestObstacleStoreRetainCompacts(t *testing.T) {
	s := NewObstacleStore(4)
	for i := 0; i < 4; i++ {
		if !s.Add(Obstacle{Rect: Rect{X: i * 20, W: 10, H: 10}}) {
			t.Fatalf("add %d failed", i)
		}
	}
	if s.Add(Obstacle{}) {
		t.Fatal("expected add on full store to fail")
	}

	removed := s.Retain(func(o Obstacle) bool { return o.Rect.X != 20 && o.Rect.X != 60 })
	if removed != 2 || s.Len() != 2 {
		t.Fatalf("expected 2 removed and 2 left, got %d/%d", removed, s.Len())
	}
	for i, o := range s.All() {
		if !o.Active {
			t.Errorf("slot %d inactive after compaction", i)
		}
	}
	if all := s.All(); all[0].Rect.X != 0 || all[1].Rect.X != 40 {
		t.Errorf("retain should keep insertion order, got %+v", s.All())
	}
}

func TestParticlePoolBoundedAndSwapRemove(t *testing.T) {
	pp := NewParticlePool(5)
	rng := rand.New(rand.NewSource(1))

	if n := pp.Emit(Point{}, 10, rng); n != 5 {
		t.Fatalf("expected pool to cap at 5, emitted %d", n)
	}
	for _, p := range pp.All() {
		if p.Life < 10 || p.Life > 29 {
			t.Errorf("life %d out of range", p.Life)
		}
		if p.Vel.X < -3 || p.Vel.X > 3 || p.Vel.Y < -3 || p.Vel.Y > 3 {
			t.Errorf("velocity %v out of range", p.Vel)
		}
	}

	pp.items[1].Life = 1
	pp.items[3].Life = 1
	pp.Update()
	if pp.Len() != 3 {
		t.Fatalf("expected 3 particles after expiry, got %d", pp.Len())
	}
	for _, p := range pp.All() {
		if p.Life <= 0 {
			t.Errorf("dead particle left in pool: %+v", p)
		}
	}

	for i := 0; i < 30; i++ {
		pp.Update()
	}
	if pp.Len() != 0 {
		t.Errorf("expected empty pool after 30 frames, got %d", pp.Len())
	}
}
