package game

import "github.com/iburimskiy/audio-runner/internal/config"

// Frame runs one video frame of the state machine and, when RUNNING, the
// simulation step.
func (s *Session) Frame() {
	s.Flash.decay()

	buttons := s.dev.Input.ReadButtons()
	if s.machine.EvaluatePause(buttons.Has(ButtonPause)) {
		s.log.Printf("%s at %v", s.machine.State(), s.Player.Pos)
	}

	switch s.machine.State() {
	case StatePaused:
		return
	case StateGameOver:
		s.World.Particles.Update()
		if s.machine.EvaluateReset(buttons.Has(ButtonReset)) {
			s.Reset()
		}
		return
	}

	s.step()
}

func (s *Session) step() {
	s.Stats.Frames++
	s.advanceClock()
	s.World.Particles.Update()

	if s.detector.Poll(s.dev.Sensor) {
		s.turn()
	}

	// Movement
	if s.Player.Dir == Up {
		s.Player.Pos.Y -= s.Player.Speed
	} else {
		s.Player.Pos.X += s.Player.Speed
	}

	s.SpawnCounter++
	if s.SpawnCounter >= s.SpawnInterval {
		s.Stats.SpawnAttempts++
		if s.spawner.SpawnObstacle(s.World, s.Player.Pos) {
			s.Stats.ObstaclesPlaced++
		}
		s.SpawnCounter = 0
	}
	s.Stats.Pruned += s.spawner.PruneObstacles(s.World, s.Player.Pos)

	if s.collides() {
		s.machine.GameOver()
		s.log.Printf("game over at %v: score %d, time %s, laps %d",
			s.Player.Pos, s.Score, formatHundredths(s.TimeHundredths), s.Laps)
		return
	}
	s.resolveCollectibles()
}

func (s *Session) advanceClock() {
	if !s.dev.Clock.TickReady() {
		return
	}
	s.dev.Clock.Acknowledge()
	s.TimeHundredths += s.tickUnits
	for s.TimeHundredths >= config.LapHundredths {
		s.TimeHundredths -= config.LapHundredths
		s.Laps++
		s.dev.Indicators.ShowLapBits(lapMask(s.Laps))
	}
	s.dev.Indicators.ShowTime(s.TimeHundredths)
}

func (s *Session) turn() {
	s.Stats.Turns++
	if !s.World.Path.Append(PathPoint{Pos: s.Player.Pos, Color: White}) {
		s.Stats.DroppedTurns++
	}
	s.Player.Dir = s.Player.Dir.Toggle()
	s.Flash = Flash{Color: randomColor(s.rng), Frames: config.FlashFrames}
	s.World.Particles.Emit(s.Player.Pos, config.TurnParticles, s.rng)
}

// Rect is the 3x3 collision box centered on the player.
func (p Player) Rect() Rect {
	return Rect{
		X: p.Pos.X - config.PlayerHalfSize,
		Y: p.Pos.Y - config.PlayerHalfSize,
		W: 2*config.PlayerHalfSize + 1,
		H: 2*config.PlayerHalfSize + 1,
	}
}

func (s *Session) collides() bool {
	return s.World.Obstacles.Overlaps(s.Player.Rect())
}

func (s *Session) resolveCollectibles() {
	pos := s.Player.Pos
	for slot := range s.World.Collectibles {
		c := &s.World.Collectibles[slot]
		if !c.Active {
			continue
		}
		if c.Rect.ContainsPoint(pos) {
			c.Kind.Apply(s)
			s.Stats.Pickups[c.Kind]++
			s.dev.Indicators.ShowScore(s.Score)
			c.Active = false
			s.spawner.SpawnCollectible(s.World, slot, pos)
		}
		if offscreen(c.Rect, pos) {
			s.spawner.SpawnCollectible(s.World, slot, pos)
		}
	}
}

// lapMask lights the LED for the most recent lap.
func lapMask(laps int) uint32 {
	if laps <= 0 {
		return 0
	}
	if laps > 32 {
		laps = 32
	}
	return 1 << (laps - 1)
}
