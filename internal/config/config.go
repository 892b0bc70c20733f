package config

import (
	"os"
	"strconv"
	"time"
)

const (
	ScreenWidth  = 320
	ScreenHeight = 240

	// Window scale for the ebiten frontend
	DefaultScale = 3

	// Store capacities
	MaxObstacles  = 200
	MaxParticles  = 50
	MaxPathPoints = 100

	// Entity sizes
	ObstacleSize    = 10
	CollectibleSize = 8
	PlayerHalfSize  = 1

	// Obstacle placement
	ObstacleAttempts  = 10
	ObstacleMinDX     = 0
	ObstacleMaxDX     = 80
	ObstacleMinDY     = -100
	ObstacleMaxDY     = -20
	CollectibleMinDX  = 30
	CollectibleMaxDX  = 110
	CollectibleMinDY  = -110
	CollectibleMaxDY  = -30
	PruneMargin       = 20
	EasySpawnInterval = 60
	HardSpawnInterval = 30

	// Audio edge detection
	AmplitudeThreshold = 900000000
	TurnCooldown       = 5
	FlashFrames        = 10
	TurnParticles      = 10
	SensorFIFOSize     = 8192

	// Manual impulse (space key): a short full-ish scale burst
	ImpulseLevel   = 0.9
	ImpulseSamples = 64

	// Particle effect
	ParticleMaxSpeed = 3
	ParticleMinLife  = 10
	ParticleMaxLife  = 29

	// Score and clock
	MaxScore       = 99
	TickUnits      = 50
	TickPeriod     = 500 * time.Millisecond
	LapHundredths  = 9900
	ScorePickup    = 2
	BoostPickup    = 4
	SpawnDecayNum  = 10
	SpawnDecayDen  = 13
	MinSpawnPeriod = 1
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Settings holds the runtime-tunable values. Zero value is not useful, use Default or Load.
type Settings struct {
	Seed          int64
	Threshold     int64
	TickUnits     int
	TickPeriod    time.Duration
	MaxObstacles  int
	MaxParticles  int
	MaxPathPoints int
	AudioFile     string
	Frontend      string
	Scale         int
	Simple        bool
	Mute          bool
}

// Default returns the settings matching the board build.
func Default() Settings {
	return Settings{
		Seed:          time.Now().UnixNano(),
		Threshold:     AmplitudeThreshold,
		TickUnits:     TickUnits,
		TickPeriod:    TickPeriod,
		MaxObstacles:  MaxObstacles,
		MaxParticles:  MaxParticles,
		MaxPathPoints: MaxPathPoints,
		Frontend:      FrontendWindow,
		Scale:         DefaultScale,
	}
}

// Load overlays AUDIORUN_* environment variables on top of Default.
// Values that fail to parse are ignored.
func Load() Settings {
	return load(os.Getenv)
}

func load(getenv func(string) string) Settings {
	s := Default()

	if v := getenv("AUDIORUN_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = n
		}
	}
	if v := getenv("AUDIORUN_THRESHOLD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			s.Threshold = n
		}
	}
	if v := getenv("AUDIORUN_TICK_UNITS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.TickUnits = n
		}
	}
	if v := getenv("AUDIORUN_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.TickPeriod = time.Duration(n) * time.Millisecond
		}
	}
	positive(getenv, "AUDIORUN_MAX_OBSTACLES", &s.MaxObstacles)
	positive(getenv, "AUDIORUN_MAX_PARTICLES", &s.MaxParticles)
	positive(getenv, "AUDIORUN_MAX_PATH", &s.MaxPathPoints)
	positive(getenv, "AUDIORUN_SCALE", &s.Scale)

	if v := getenv("AUDIORUN_AUDIO_FILE"); v != "" {
		s.AudioFile = v
	}
	switch v := getenv("AUDIORUN_FRONTEND"); v {
	case FrontendWindow, FrontendTerminal:
		s.Frontend = v
	}
	if v := getenv("AUDIORUN_SIMPLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Simple = b
		}
	}
	if v := getenv("AUDIORUN_MUTE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Mute = b
		}
	}

	return s
}

func positive(getenv func(string) string, key string, dst *int) {
	v := getenv(key)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		*dst = n
	}
}
