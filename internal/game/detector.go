package game

import "github.com/iburimskiy/audio-runner/internal/config"

// TurnDetector turns audio transients into discrete turn events.
//
// The sensor is drained to empty on every frame it is polled so that backlog
// never builds up. After a turn, a cooldown suppresses amplitude evaluation so
// a single transient spanning several frames yields one event.
type TurnDetector struct {
	Threshold int64
	Cooldown  int

	remaining int
}

func NewTurnDetector(threshold int64) *TurnDetector {
	return &TurnDetector{Threshold: threshold, Cooldown: config.TurnCooldown}
}

// Poll runs one frame of detection and reports a turn event.
func (d *TurnDetector) Poll(sensor Sensor) bool {
	if d.remaining > 0 {
		d.remaining--
		drain(sensor)
		return false
	}
	if sensor.PendingSamples() == 0 {
		return false
	}
	if peak(sensor) > d.Threshold {
		d.remaining = d.Cooldown
		return true
	}
	return false
}

// Cooling reports whether the detector is inside a post-turn cooldown.
func (d *TurnDetector) Cooling() bool { return d.remaining > 0 }

func (d *TurnDetector) Reset() { d.remaining = 0 }

// peak drains the sensor tracking the largest absolute left-channel sample.
func peak(sensor Sensor) int64 {
	var max int64
	for sensor.PendingSamples() > 0 {
		l, _ := sensor.ReadSample()
		a := int64(l)
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return max
}

func drain(sensor Sensor) {
	for sensor.PendingSamples() > 0 {
		sensor.ReadSample()
	}
}
