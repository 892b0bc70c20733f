package game

import (
	"math/rand"

	"github.com/iburimskiy/audio-runner/internal/config"
)

// PathPoint is a recorded turning point.
type PathPoint struct {
	Pos   Point
	Color Color
}

// Path is an append-only list of turning points. Once full, appends are dropped.
type Path struct {
	points []PathPoint
	max    int
}

func NewPath(max int) *Path {
	if max <= 0 {
		max = config.MaxPathPoints
	}
	return &Path{points: make([]PathPoint, 0, max), max: max}
}

// Append records p and reports whether it was stored.
func (p *Path) Append(pt PathPoint) bool {
	if len(p.points) >= p.max {
		return false
	}
	p.points = append(p.points, pt)
	return true
}

// Reset leaves a single point at origin.
func (p *Path) Reset(origin Point) {
	p.points = append(p.points[:0], PathPoint{Pos: origin, Color: White})
}

func (p *Path) Len() int            { return len(p.points) }
func (p *Path) Points() []PathPoint { return p.points }

// Obstacle is a fixed-size block placed ahead of the player.
type Obstacle struct {
	Rect   Rect
	Color  Color
	Active bool
}

// ObstacleStore keeps live obstacles densely packed in insertion order.
type ObstacleStore struct {
	items []Obstacle
	max   int
}

func NewObstacleStore(max int) *ObstacleStore {
	if max <= 0 {
		max = config.MaxObstacles
	}
	return &ObstacleStore{items: make([]Obstacle, 0, max), max: max}
}

// Add appends an active obstacle. Reports false when the store is full.
func (s *ObstacleStore) Add(o Obstacle) bool {
	if len(s.items) >= s.max {
		return false
	}
	o.Active = true
	s.items = append(s.items, o)
	return true
}

// Retain compacts the store to the obstacles for which keep returns true.
// Inactive entries are always dropped.
func (s *ObstacleStore) Retain(keep func(Obstacle) bool) int {
	n := 0
	for _, o := range s.items {
		if o.Active && keep(o) {
			s.items[n] = o
			n++
		}
	}
	removed := len(s.items) - n
	s.items = s.items[:n]
	return removed
}

// Overlaps reports whether r intersects any live obstacle.
func (s *ObstacleStore) Overlaps(r Rect) bool {
	for _, o := range s.items {
		if o.Active && o.Rect.Intersects(r) {
			return true
		}
	}
	return false
}

func (s *ObstacleStore) Clear()          { s.items = s.items[:0] }
func (s *ObstacleStore) Len() int        { return len(s.items) }
func (s *ObstacleStore) Full() bool      { return len(s.items) >= s.max }
func (s *ObstacleStore) All() []Obstacle { return s.items }

// Particle is a short-lived spark emitted on a turn.
type Particle struct {
	Pos  Point
	Vel  Point
	Life int
}

// ParticlePool is a bounded pool; dead particles are swap-removed.
type ParticlePool struct {
	items []Particle
	max   int
}

func NewParticlePool(max int) *ParticlePool {
	if max <= 0 {
		max = config.MaxParticles
	}
	return &ParticlePool{items: make([]Particle, 0, max), max: max}
}

// Emit spawns up to count particles at pos, stopping when the pool is full.
func (pp *ParticlePool) Emit(pos Point, count int, rng *rand.Rand) int {
	spread := 2*config.ParticleMaxSpeed + 1
	lifeSpan := config.ParticleMaxLife - config.ParticleMinLife + 1
	n := 0
	for ; n < count && len(pp.items) < pp.max; n++ {
		pp.items = append(pp.items, Particle{
			Pos: pos,
			Vel: Point{
				X: rng.Intn(spread) - config.ParticleMaxSpeed,
				Y: rng.Intn(spread) - config.ParticleMaxSpeed,
			},
			Life: rng.Intn(lifeSpan) + config.ParticleMinLife,
		})
	}
	return n
}

// Update advances every particle one frame. Order is not preserved.
func (pp *ParticlePool) Update() {
	for i := 0; i < len(pp.items); {
		p := &pp.items[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			last := len(pp.items) - 1
			pp.items[i] = pp.items[last]
			pp.items = pp.items[:last]
			continue
		}
		i++
	}
}

func (pp *ParticlePool) Clear()          { pp.items = pp.items[:0] }
func (pp *ParticlePool) Len() int        { return len(pp.items) }
func (pp *ParticlePool) All() []Particle { return pp.items }

// World owns every mutable entity collection of a session.
type World struct {
	Path         *Path
	Obstacles    *ObstacleStore
	Collectibles [CollectibleSlots]Collectible
	Particles    *ParticlePool
}

func NewWorld(maxPath, maxObstacles, maxParticles int) *World {
	return &World{
		Path:      NewPath(maxPath),
		Obstacles: NewObstacleStore(maxObstacles),
		Particles: NewParticlePool(maxParticles),
	}
}

// collectibleOverlaps checks r against every live collectible except skip.
func (w *World) collectibleOverlaps(r Rect, skip int) bool {
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if i == skip || !c.Active {
			continue
		}
		if c.Rect.Intersects(r) {
			return true
		}
	}
	return false
}

// ActiveCollectibles counts live collectibles.
func (w *World) ActiveCollectibles() int {
	n := 0
	for i := range w.Collectibles {
		if w.Collectibles[i].Active {
			n++
		}
	}
	return n
}
