package game

// GameState gates which parts of a frame run.
type GameState int

const (
	StateRunning GameState = iota
	StatePaused
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// risingEdge fires on a previously-unpressed, now-pressed sample.
type risingEdge struct {
	prev bool
}

func (e *risingEdge) Update(pressed bool) bool {
	fired := pressed && !e.prev
	e.prev = pressed
	return fired
}

// releaseThenPress fires only after the key was seen released and is then
// pressed, so a key already held when it is armed does nothing.
type releaseThenPress struct {
	released bool
}

func (g *releaseThenPress) Update(pressed bool) bool {
	if !g.released {
		if !pressed {
			g.released = true
		}
		return false
	}
	if pressed {
		g.released = false
		return true
	}
	return false
}

func (g *releaseThenPress) Disarm() { g.released = false }

// StateMachine holds RUNNING/PAUSED/GAME_OVER and the input edges driving it.
type StateMachine struct {
	state GameState
	pause risingEdge
	reset releaseThenPress
}

func (m *StateMachine) State() GameState { return m.state }

// EvaluatePause toggles RUNNING and PAUSED on a pause-key rising edge.
// The edge is tracked in every state.
func (m *StateMachine) EvaluatePause(pressed bool) bool {
	if !m.pause.Update(pressed) {
		return false
	}
	switch m.state {
	case StateRunning:
		m.state = StatePaused
		return true
	case StatePaused:
		m.state = StateRunning
		return true
	}
	return false
}

// GameOver is the only way out of RUNNING besides pausing.
func (m *StateMachine) GameOver() {
	if m.state == StateRunning {
		m.state = StateGameOver
		m.reset.Disarm()
	}
}

// EvaluateReset reports whether a GAME_OVER session should restart.
func (m *StateMachine) EvaluateReset(pressed bool) bool {
	if m.state != StateGameOver {
		return false
	}
	return m.reset.Update(pressed)
}

// Start enters RUNNING; used by session reset only.
func (m *StateMachine) Start() {
	m.state = StateRunning
	m.reset.Disarm()
}
