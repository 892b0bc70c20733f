package game

// Loop drives one Session against its display and renderer.
type Loop struct {
	Session  *Session
	Display  Display
	Renderer Renderer
}

// Tick runs one frame: swap at vsync, claim the new back buffer, step the
// session, then draw the result.
func (l *Loop) Tick() {
	front := l.Display.SwapAndWaitVSync()
	l.Display.SetBackBuffer(1 - front)
	l.Session.Frame()
	if l.Renderer != nil {
		l.Renderer.Render(l.Session.Snapshot())
	}
}
