package game

import "github.com/iburimskiy/audio-runner/internal/config"

// CollectibleSlots is the fixed number of live collectibles.
const CollectibleSlots = 3

// CollectibleKind is the effect a pickup applies.
type CollectibleKind uint8

const (
	SlowDown   CollectibleKind = iota // resets speed and spawn interval
	Score                             // +2 score, obstacles spawn faster
	BoostScore                        // +1 speed, +4 score
)

// KindForSlot binds slot indexes to kinds.
func KindForSlot(slot int) CollectibleKind {
	return CollectibleKind(slot)
}

func (k CollectibleKind) Color() Color {
	switch k {
	case SlowDown:
		return Blue
	case Score:
		return Yellow
	default:
		return Orange
	}
}

func (k CollectibleKind) String() string {
	switch k {
	case SlowDown:
		return "slow-down"
	case Score:
		return "score"
	case BoostScore:
		return "boost-score"
	}
	return "unknown"
}

// Apply mutates the session according to the kind's effect.
func (k CollectibleKind) Apply(s *Session) {
	switch k {
	case SlowDown:
		s.Player.Speed = 1
		s.SpawnInterval = defaultSpawnInterval(s.Simple)
	case Score:
		s.addScore(config.ScorePickup)
		s.SpawnInterval = decaySpawnInterval(s.SpawnInterval)
	case BoostScore:
		s.Player.Speed++
		s.addScore(config.BoostPickup)
	}
}

// Collectible is a pickup bound to a slot.
type Collectible struct {
	Rect   Rect
	Kind   CollectibleKind
	Color  Color
	Active bool
}

func defaultSpawnInterval(simple bool) int {
	if simple {
		return config.EasySpawnInterval
	}
	return config.HardSpawnInterval
}

// decaySpawnInterval divides by 1.3 in integer arithmetic, truncating.
func decaySpawnInterval(v int) int {
	v = v * config.SpawnDecayNum / config.SpawnDecayDen
	if v < config.MinSpawnPeriod {
		return config.MinSpawnPeriod
	}
	return v
}
