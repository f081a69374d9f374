package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

func ghostAt(id sim.Identity, pos, scatter sim.Coord) *sim.Ghost {
	return sim.NewGhost(sim.GhostSpec{Name: id.String(), ID: id, Start: pos, Scatter: scatter}, sim.ModeChase)
}

func TestChaseTargets(t *testing.T) {
	ctx := sim.TargetContext{
		Pacman:       sim.C(10, 10),
		Facing:       sim.DirUp,
		Pursuer:      sim.C(8, 12),
		ShyThreshold: 8,
		AmbushAhead:  4,
		FlankAhead:   2,
	}

	tests := []struct {
		name     string
		ghost    *sim.Ghost
		expected sim.Coord
	}{
		{"pursuer", ghostAt(sim.Blinky, sim.C(8, 12), sim.C(0, 0)), sim.C(10, 10)},
		{"ambusher", ghostAt(sim.Pinky, sim.C(1, 1), sim.C(0, 0)), sim.C(10, 6)},
		// ahead = (10,8); ahead + 2*(ahead - (8,12)) = (14,0)
		{"flanker", ghostAt(sim.Inky, sim.C(1, 1), sim.C(0, 0)), sim.C(14, 0)},
		{"unknown identity", ghostAt(sim.Identity(9), sim.C(1, 1), sim.C(3, 3)), sim.C(3, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sim.ChaseTarget(tc.ghost, ctx))
		})
	}
}

func TestShyPursuerThreshold(t *testing.T) {
	scatter := sim.C(0, 30)
	ctx := sim.TargetContext{Pacman: sim.C(10, 10), ShyThreshold: 8}

	tests := []struct {
		name     string
		pos      sim.Coord
		expected sim.Coord
	}{
		{"distance 8 retreats", sim.C(10, 18), scatter},
		{"distance 9 pursues", sim.C(10, 19), sim.C(10, 10)},
		{"distance 9 mixed axes", sim.C(14, 15), sim.C(10, 10)},
		{"adjacent retreats", sim.C(11, 10), scatter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gh := ghostAt(sim.Clyde, tc.pos, scatter)
			assert.Equal(t, tc.expected, sim.ChaseTarget(gh, ctx))
		})
	}
}
