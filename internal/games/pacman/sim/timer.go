package sim

import "math"

// Timer is an accumulated-delta countdown. It fires at most once per check:
// Reset discards any overshoot instead of carrying it into the next interval.
type Timer struct {
	Elapsed float64
}

// Advance adds dt seconds.
func (t *Timer) Advance(dt float64) {
	t.Elapsed += dt
}

// Due reports whether at least interval seconds have accumulated.
func (t Timer) Due(interval float64) bool {
	return t.Elapsed >= interval
}

// Reset zeroes the timer.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// SpeedForLevel returns a movement interval in seconds:
// max(minSpeed, base*(1-step*level)).
func SpeedForLevel(base, minSpeed float64, level int, step float64) float64 {
	return math.Max(minSpeed, base*(1-step*float64(level)))
}

// FrightenedDuration returns max(0, base-level) seconds.
func FrightenedDuration(base float64, level int) float64 {
	return math.Max(0, base-float64(level))
}
