package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// flushEvery is how many frames pass between input flushes to the store.
const flushEvery = 120

// Session records one interactive run into the replay store.
type Session struct {
	store    *storage.Store
	game     *Game
	recorder *Recorder
	id       string
	finished bool
}

// StartSession creates a session row for g and attaches a recorder.
// g must already be Reset with rt.
func StartSession(store *storage.Store, g *Game, rt core.RuntimeConfig) (*Session, error) {
	setup := g.Setup()
	if setup == nil {
		return nil, fmt.Errorf("pacman: start session before reset")
	}
	cfgYAML, err := setup.ConfigYAML()
	if err != nil {
		return nil, err
	}
	id, err := store.CreateSession(storage.Session{
		GameID:     g.ID(),
		MapID:      setup.Map.ID,
		Seed:       rt.Seed,
		TickRate:   rt.TickRate,
		Difficulty: string(setup.Difficulty),
		Config:     cfgYAML,
	})
	if err != nil {
		return nil, err
	}

	rec := NewRecorder()
	g.AttachRecorder(rec)
	return &Session{store: store, game: g, recorder: rec, id: id}, nil
}

// ID returns the stored session ID.
func (s *Session) ID() string { return s.id }

// Tick flushes buffered inputs every flushEvery frames. A game over
// finishes the session.
func (s *Session) Tick() error {
	if s.finished {
		return nil
	}
	if s.game.State().GameOver {
		return s.Finish(storage.OutcomeGameOver)
	}
	if s.recorder.Frames()%flushEvery != 0 {
		return nil
	}
	return s.flush()
}

func (s *Session) flush() error {
	return s.store.AppendInputs(s.id, s.recorder.Drain())
}

// Finish flushes remaining inputs and stores the final result.
// Later calls are no-ops.
func (s *Session) Finish(outcome string) error {
	if s.finished {
		return nil
	}
	s.finished = true
	if err := s.flush(); err != nil {
		return err
	}
	st := s.game.State()
	return s.store.FinishSession(s.id, storage.Result{
		Score:   st.Score,
		Level:   st.Level,
		Ticks:   s.recorder.Frames(),
		Outcome: outcome,
	})
}

// Finished reports whether the session has been closed.
func (s *Session) Finished() bool { return s.finished }

// LoadReplay rebuilds the game, runtime config and input playback for a
// stored session.
func LoadReplay(store *storage.Store, id string) (*Game, core.RuntimeConfig, *Playback, *storage.Session, error) {
	sess, err := store.SessionByID(id)
	if err != nil {
		return nil, core.RuntimeConfig{}, nil, nil, err
	}
	records, err := store.Inputs(sess.ID)
	if err != nil {
		return nil, core.RuntimeConfig{}, nil, nil, err
	}
	setup, err := SetupFromYAML(sess.Config, config.DifficultyPreset(sess.Difficulty))
	if err != nil {
		return nil, core.RuntimeConfig{}, nil, nil, err
	}
	g, err := NewVariant(sess.GameID, setup)
	if err != nil {
		return nil, core.RuntimeConfig{}, nil, nil, err
	}
	rt := core.DefaultConfig()
	rt.Seed = sess.Seed
	rt.TickRate = sess.TickRate
	return g, rt, NewPlayback(sess.Ticks, records), sess, nil
}
