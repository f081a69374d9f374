package pacman

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Playback turns stored input records back into per-frame input.
type Playback struct {
	records []storage.InputRecord
	frames  int
	frame   int
	next    int
}

// NewPlayback plays frames frames. Records must be sorted by tick.
func NewPlayback(frames int, records []storage.InputRecord) *Playback {
	return &Playback{records: records, frames: frames}
}

// Next returns the input for the next frame, or false once all frames are played.
func (p *Playback) Next() (core.InputFrame, bool) {
	if p.frame >= p.frames {
		return core.InputFrame{}, false
	}
	in := core.NewInputFrame()
	for p.next < len(p.records) && p.records[p.next].Tick < p.frame {
		p.next++
	}
	if p.next < len(p.records) && p.records[p.next].Tick == p.frame {
		for _, name := range p.records[p.next].Actions {
			if a := core.ParseAction(name); a != core.ActionNone {
				in.Set(a)
			}
		}
	}
	p.frame++
	return in, true
}

// Done reports whether every frame has been played.
func (p *Playback) Done() bool { return p.frame >= p.frames }

// Progress returns the frames played and the total.
func (p *Playback) Progress() (played, total int) { return p.frame, p.frames }

// Replay steps g for frames ticks, feeding the recorded inputs at their
// frame numbers. g must already be Reset with the recorded seed.
func Replay(g *Game, frames int, records []storage.InputRecord) sim.Snapshot {
	p := NewPlayback(frames, records)
	for {
		in, ok := p.Next()
		if !ok {
			break
		}
		g.Step(in)
	}
	return g.Snapshot()
}

// ScriptedInputs generates pseudo-random direction changes for headless runs.
// On average one turn is requested every turnEvery frames.
func ScriptedInputs(seed int64, frames, turnEvery int) []storage.InputRecord {
	if turnEvery <= 0 {
		turnEvery = 30
	}
	rng := rand.New(rand.NewSource(seed))
	dirs := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

	var out []storage.InputRecord
	for f := 0; f < frames; f++ {
		if rng.Intn(turnEvery) != 0 {
			continue
		}
		a := dirs[rng.Intn(len(dirs))]
		out = append(out, storage.InputRecord{Tick: f, Actions: []string{a.String()}})
	}
	return out
}
