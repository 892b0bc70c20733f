package game

import "testing"

// runDetector feeds frames of samples and returns the frames that turned.
func runDetector(d *TurnDetector, s *fakeSensor, frames [][]int32) []int {
	var turns []int
	for i, f := range frames {
		s.Push(f...)
		if d.Poll(s) {
			turns = append(turns, i)
		}
	}
	return turns
}

func TestTurnDebounce(t *testing.T) {
	d := NewTurnDetector(900_000_000)
	s := &fakeSensor{}

	frames := make([][]int32, 8)
	frames[0] = []int32{10, loud, 10}
	frames[3] = []int32{loud}

	turns := runDetector(d, s, frames)
	if len(turns) != 1 || turns[0] != 0 {
		t.Fatalf("expected exactly one turn at frame 0, got %v", turns)
	}
	if s.PendingSamples() != 0 {
		t.Errorf("cooldown frames must still drain, %d pending", s.PendingSamples())
	}
}

func TestTurnRetriggersAfterCooldown(t *testing.T) {
	d := NewTurnDetector(900_000_000)
	s := &fakeSensor{}

	frames := make([][]int32, 7)
	frames[0] = []int32{loud}
	frames[5] = []int32{loud} // last cooldown frame, discarded
	frames[6] = []int32{loud}

	turns := runDetector(d, s, frames)
	if len(turns) != 2 || turns[1] != 6 {
		t.Fatalf("expected turns at frames 0 and 6, got %v", turns)
	}
}

func TestTurnUsesAbsoluteAmplitude(t *testing.T) {
	d := NewTurnDetector(900_000_000)
	s := &fakeSensor{}
	s.Push(-loud)

	if !d.Poll(s) {
		t.Fatal("negative transient should trigger a turn")
	}
}

func TestQuietSignalDrainsWithoutTurn(t *testing.T) {
	d := NewTurnDetector(900_000_000)
	s := &fakeSensor{}
	s.Push(100, -200, 900_000_000)

	if d.Poll(s) {
		t.Fatal("amplitude equal to threshold must not turn")
	}
	if s.PendingSamples() != 0 || s.reads != 3 {
		t.Errorf("expected full drain, pending=%d reads=%d", s.PendingSamples(), s.reads)
	}
	if d.Cooling() {
		t.Error("no cooldown expected without a turn")
	}
}
