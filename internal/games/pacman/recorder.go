package pacman

import (
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Recorder captures the input frame of every Step. Frames are numbered from
// zero in Step order, across restarts; empty frames are counted but not kept.
type Recorder struct {
	frames  int
	pending []storage.InputRecord
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe records one frame.
func (r *Recorder) Observe(in core.InputFrame) {
	if actions := in.List(); len(actions) > 0 {
		names := make([]string, len(actions))
		for i, a := range actions {
			names[i] = a.String()
		}
		r.pending = append(r.pending, storage.InputRecord{Tick: r.frames, Actions: names})
	}
	r.frames++
}

// Frames returns the number of frames observed so far.
func (r *Recorder) Frames() int { return r.frames }

// Drain returns the records not yet drained and forgets them.
func (r *Recorder) Drain() []storage.InputRecord {
	out := r.pending
	r.pending = nil
	return out
}
