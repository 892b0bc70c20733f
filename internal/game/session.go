package game

import (
	"io"
	"log"
	"math/rand"

	"github.com/iburimskiy/audio-runner/internal/config"
)

// Options configures a Session. Zero capacities fall back to config defaults.
type Options struct {
	Seed          int64
	Threshold     int64
	TickUnits     int
	MaxObstacles  int
	MaxParticles  int
	MaxPathPoints int
	Log           *log.Logger
}

// OptionsFrom maps runtime settings onto session options.
func OptionsFrom(s config.Settings, logger *log.Logger) Options {
	return Options{
		Seed:          s.Seed,
		Threshold:     s.Threshold,
		TickUnits:     s.TickUnits,
		MaxObstacles:  s.MaxObstacles,
		MaxParticles:  s.MaxParticles,
		MaxPathPoints: s.MaxPathPoints,
		Log:           logger,
	}
}

// Player is the controlled point.
type Player struct {
	Pos   Point
	Dir   Direction
	Speed int
}

// Flash is the background color pulse after a turn.
type Flash struct {
	Color  Color
	Frames int
}

func (f *Flash) decay() {
	if f.Frames > 0 {
		f.Frames--
		return
	}
	f.Color = Black
}

// Stats counts per-session events.
type Stats struct {
	Frames          int
	Turns           int
	DroppedTurns    int
	SpawnAttempts   int
	ObstaclesPlaced int
	Pruned          int
	Pickups         [CollectibleSlots]int
}

// Session is the single owned aggregate of all simulation state.
type Session struct {
	Player         Player
	World          *World
	Score          int
	TimeHundredths int
	Laps           int
	SpawnInterval  int
	SpawnCounter   int
	Simple         bool
	Flash          Flash
	Stats          Stats

	machine   StateMachine
	detector  *TurnDetector
	spawner   *Spawner
	rng       *rand.Rand
	dev       Devices
	tickUnits int
	log       *log.Logger
}

// Origin is the spawn point of every session.
func Origin() Point {
	return Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
}

// NewSession wires devices and starts the first session.
func NewSession(dev Devices, opts Options) *Session {
	if opts.Threshold <= 0 {
		opts.Threshold = config.AmplitudeThreshold
	}
	if opts.TickUnits <= 0 {
		opts.TickUnits = config.TickUnits
	}
	logger := opts.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	s := &Session{
		World:     NewWorld(opts.MaxPathPoints, opts.MaxObstacles, opts.MaxParticles),
		detector:  NewTurnDetector(opts.Threshold),
		spawner:   NewSpawner(rng),
		rng:       rng,
		dev:       withDefaults(dev),
		tickUnits: opts.TickUnits,
		log:       logger,
	}
	s.Reset()
	return s
}

func (s *Session) State() GameState { return s.machine.State() }

// Reset starts a fresh session. It is the only way to begin play.
func (s *Session) Reset() {
	s.Simple = s.dev.Input.ReadModeSwitch()
	origin := Origin()

	s.Player = Player{Pos: origin, Dir: Up, Speed: 1}
	s.World.Path.Reset(origin)
	s.World.Obstacles.Clear()
	s.World.Particles.Clear()
	for i := range s.World.Collectibles {
		s.World.Collectibles[i] = Collectible{}
	}

	s.Score = 0
	s.TimeHundredths = 0
	s.Laps = 0
	s.SpawnCounter = 0
	s.SpawnInterval = defaultSpawnInterval(s.Simple)
	s.Flash = Flash{Color: Black}
	s.Stats = Stats{}
	s.detector.Reset()
	drain(s.dev.Sensor)
	s.machine.Start()

	s.dev.Clock.Arm()
	s.dev.Display.ClearBuffers()
	s.dev.Indicators.ShowScore(0)
	s.dev.Indicators.ShowTime(0)
	s.dev.Indicators.ShowLapBits(0)

	for slot := range CollectibleSlots {
		s.spawner.SpawnCollectible(s.World, slot, origin)
	}

	mode := "hard"
	if s.Simple {
		mode = "simple"
	}
	s.log.Printf("session reset: %s mode, spawn interval %d", mode, s.SpawnInterval)
}

func (s *Session) addScore(n int) {
	s.Score = clampInt(s.Score+n, 0, config.MaxScore)
}

// Snapshot is the read-only view handed to the renderer. Slices alias session
// storage and are valid until the next Frame.
type Snapshot struct {
	State          GameState
	Player         Player
	Path           []PathPoint
	Obstacles      []Obstacle
	Collectibles   [CollectibleSlots]Collectible
	Particles      []Particle
	Background     Color
	Score          int
	TimeHundredths int
	Laps           int
	Simple         bool
	Stats          Stats
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:          s.machine.State(),
		Player:         s.Player,
		Path:           s.World.Path.Points(),
		Obstacles:      s.World.Obstacles.All(),
		Collectibles:   s.World.Collectibles,
		Particles:      s.World.Particles.All(),
		Background:     s.Flash.Color,
		Score:          s.Score,
		TimeHundredths: s.TimeHundredths,
		Laps:           s.Laps,
		Simple:         s.Simple,
		Stats:          s.Stats,
	}
}
