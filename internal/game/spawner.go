package game

import (
	"math/rand"

	"github.com/iburimskiy/audio-runner/internal/config"
)

// Spawner places obstacles and collectibles without overlap.
type Spawner struct {
	rng      *rand.Rand
	attempts int
}

func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{rng: rng, attempts: config.ObstacleAttempts}
}

// rangeInt returns a value in [lo, hi].
func (sp *Spawner) rangeInt(lo, hi int) int {
	return lo + sp.rng.Intn(hi-lo+1)
}

// SpawnObstacle tries a bounded number of candidates ahead of center.
// It reports whether an obstacle was placed; failure is not an error.
func (sp *Spawner) SpawnObstacle(w *World, center Point) bool {
	if w.Obstacles.Full() {
		return false
	}
	for range sp.attempts {
		r := Rect{
			X: center.X + sp.rangeInt(config.ObstacleMinDX, config.ObstacleMaxDX),
			Y: center.Y + sp.rangeInt(config.ObstacleMinDY, config.ObstacleMaxDY),
			W: config.ObstacleSize,
			H: config.ObstacleSize,
		}
		if w.Obstacles.Overlaps(r) || w.collectibleOverlaps(r, -1) {
			continue
		}
		return w.Obstacles.Add(Obstacle{Rect: r, Color: Green})
	}
	return false
}

// SpawnCollectible searches without an attempt cap until slot fits.
func (sp *Spawner) SpawnCollectible(w *World, slot int, center Point) {
	var r Rect
	for {
		r = Rect{
			X: center.X + sp.rangeInt(config.CollectibleMinDX, config.CollectibleMaxDX),
			Y: center.Y + sp.rangeInt(config.CollectibleMinDY, config.CollectibleMaxDY),
			W: config.CollectibleSize,
			H: config.CollectibleSize,
		}
		if !w.Obstacles.Overlaps(r) && !w.collectibleOverlaps(r, slot) {
			break
		}
	}
	kind := KindForSlot(slot)
	w.Collectibles[slot] = Collectible{
		Rect:   r,
		Kind:   kind,
		Color:  kind.Color(),
		Active: true,
	}
}

// PruneObstacles drops every obstacle whose anchor lies outside the
// screen-sized window around center widened by the prune margin.
func (sp *Spawner) PruneObstacles(w *World, center Point) int {
	halfW := config.ScreenWidth/2 + config.PruneMargin
	halfH := config.ScreenHeight/2 + config.PruneMargin
	return w.Obstacles.Retain(func(o Obstacle) bool {
		return o.Rect.X >= center.X-halfW && o.Rect.X <= center.X+halfW &&
			o.Rect.Y >= center.Y-halfH && o.Rect.Y <= center.Y+halfH
	})
}

// offscreen reports whether r lies fully outside the viewport centered on center.
func offscreen(r Rect, center Point) bool {
	sx := r.X - center.X + config.ScreenWidth/2
	sy := r.Y - center.Y + config.ScreenHeight/2
	return sx+r.W < 0 || sx >= config.ScreenWidth ||
		sy+r.H < 0 || sy >= config.ScreenHeight
}
