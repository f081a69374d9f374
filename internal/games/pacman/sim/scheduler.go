package sim

import "github.com/zyedidia/generic/queue"

// ModeScheduler alternates the global ghost mode between Scatter and Chase.
// Each queued duration is how long the current mode lasts; once the queue is
// empty the last mode persists.
type ModeScheduler struct {
	first     GhostMode
	schedule  []float64
	mode      GhostMode
	durations *queue.Queue[float64]
	interval  float64
	running   bool
	timer     Timer
}

// NewModeScheduler starts in first with the given durations.
func NewModeScheduler(first GhostMode, durations []float64) *ModeScheduler {
	s := &ModeScheduler{
		first:    first,
		schedule: append([]float64(nil), durations...),
	}
	s.Reset()
	return s
}

// Reset restarts the schedule from the beginning.
func (s *ModeScheduler) Reset() {
	s.mode = s.first
	s.durations = queue.New[float64]()
	for _, d := range s.schedule {
		s.durations.Enqueue(d)
	}
	s.timer.Reset()
	s.running = s.pop()
}

func (s *ModeScheduler) pop() bool {
	if s.durations.Empty() {
		return false
	}
	s.interval = s.durations.Dequeue()
	return true
}

// Mode returns the current global mode.
func (s *ModeScheduler) Mode() GhostMode {
	return s.mode
}

// Running is false once the schedule is exhausted.
func (s *ModeScheduler) Running() bool {
	return s.running
}

// Remaining returns the seconds left in the current interval, or -1 when
// the schedule has stopped.
func (s *ModeScheduler) Remaining() float64 {
	if !s.running {
		return -1
	}
	return max(0, s.interval-s.timer.Elapsed)
}

// Advance adds dt to the mode-switch timer.
func (s *ModeScheduler) Advance(dt float64) {
	if s.running {
		s.timer.Advance(dt)
	}
}

// Due reports whether the current interval has elapsed.
func (s *ModeScheduler) Due() bool {
	return s.running && s.timer.Due(s.interval)
}

// Switch toggles the mode, loads the next duration and returns the new mode.
func (s *ModeScheduler) Switch() GhostMode {
	s.timer.Reset()
	if s.mode == ModeChase {
		s.mode = ModeScatter
	} else {
		s.mode = ModeChase
	}
	s.running = s.pop()
	return s.mode
}
