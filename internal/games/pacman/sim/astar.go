package sim

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// AStar searches the whole ghost-walkable graph for a shortest path to the
// target and returns its first step. The first step never reverses unless the
// ghost is in a dead end. Unreachable targets (walls, cells cut off by the
// no-reverse rule) fall back to Greedy.
type AStar struct{}

type searchNode struct {
	pos   Coord
	g     int
	f     int
	first Direction
	seq   int
}

func (AStar) Next(g *Grid, from Coord, facing Direction, target Coord) (Direction, bool) {
	target = g.Wrap(target)
	if from == target || !g.WalkableForGhost(target) {
		return Greedy{}.Next(g, from, facing, target)
	}

	open := heap.New[searchNode](func(a, b searchNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.seq < b.seq
	})
	closed := mapset.New[Coord]()
	bestG := make(map[Coord]int)
	seq := 0

	push := func(pos Coord, cost int, first Direction) {
		if old, ok := bestG[pos]; ok && old <= cost {
			return
		}
		bestG[pos] = cost
		open.Push(searchNode{pos: pos, g: cost, f: cost + g.TorusDistance(pos, target), first: first, seq: seq})
		seq++
	}

	back := facing.Opposite()
	for _, d := range Directions {
		if d == back {
			continue
		}
		n := g.Wrap(from.Step(d, 1))
		if g.WalkableForGhost(n) {
			push(n, 1, d)
		}
	}
	if open.Size() == 0 {
		return Greedy{}.Next(g, from, facing, target)
	}
	closed.Put(from)

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if cur.pos == target {
			return cur.first, true
		}
		if closed.Has(cur.pos) {
			continue
		}
		closed.Put(cur.pos)

		for _, d := range Directions {
			n := g.Wrap(cur.pos.Step(d, 1))
			if !g.WalkableForGhost(n) || closed.Has(n) {
				continue
			}
			push(n, cur.g+1, cur.first)
		}
	}

	return Greedy{}.Next(g, from, facing, target)
}
