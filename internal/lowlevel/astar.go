// Package lowlevel implements the single-agent space-time shortest-path
// search used by the high-level Conflict-Based Search: given a grid, one
// agent, and a set of constraints targeting that agent, find the
// shortest path from the agent's start to its goal that violates none of
// them.
package lowlevel

import (
	"container/heap"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

// DefaultMaxTime is the planning horizon used when a caller does not
// specify one.
const DefaultMaxTime = 200

type state struct {
	pos mapf.Position
	t   int
}

// node is one entry in the A* open set.
type node struct {
	state state
	g, f  int
	index int // heap index, maintained by container/heap
}

type openQueue []*node

func (q openQueue) Len() int { return len(q) }

// Less orders by ascending f; ties prefer the higher g (equivalently the
// lower h), which accelerates goal discovery.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].g > q[j].g
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *openQueue) Push(x any) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Plan finds the shortest path for agent on grid under constraints,
// searching no further than maxTime timesteps. It returns (path, true)
// on success, or (nil, false) if no path exists within the horizon.
//
// Search state is (position, t). Successors of (p, t) are the grid's
// neighbors of p at t+1 (including the wait action), excluding any that
// violate a vertex or edge constraint targeting this agent. The
// heuristic is Manhattan distance to the goal, admissible and consistent
// for unit-cost 4-connected motion with waits.
func Plan(grid *mapf.Grid, agent mapf.Agent, constraints []mapf.Constraint, maxTime int) (mapf.Path, bool) {
	cs := mapf.NewConstraintSet(constraints, agent.ID)

	startState := state{pos: agent.Start, t: 0}
	startBlocked := agent.Start == agent.Goal && cs.ForbidsVertex(agent.Start, 0)

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, &node{state: startState, g: 0, f: agent.Start.Manhattan(agent.Goal)})

	bestG := map[state]int{startState: 0}
	cameFrom := map[state]state{}

	for open.Len() > 0 {
		curr := heap.Pop(open).(*node)

		if g, ok := bestG[curr.state]; ok && curr.g > g {
			continue // stale entry
		}

		if curr.state.pos == agent.Goal && (curr.state.t > 0 || !startBlocked) {
			return reconstruct(cameFrom, curr.state), true
		}

		if curr.state.t >= maxTime {
			continue
		}

		nextT := curr.state.t + 1
		for _, next := range grid.Neighbors(curr.state.pos) {
			if cs.ForbidsVertex(next, nextT) || cs.ForbidsEdge(curr.state.pos, next, nextT) {
				continue
			}

			nextState := state{pos: next, t: nextT}
			nextG := curr.g + 1
			if g, ok := bestG[nextState]; ok && nextG >= g {
				continue
			}
			bestG[nextState] = nextG
			cameFrom[nextState] = curr.state
			heap.Push(open, &node{
				state: nextState,
				g:     nextG,
				f:     nextG + next.Manhattan(agent.Goal),
			})
		}
	}

	return nil, false
}

func reconstruct(cameFrom map[state]state, goal state) mapf.Path {
	path := mapf.Path{goal.pos}
	s := goal
	for {
		prev, ok := cameFrom[s]
		if !ok {
			break
		}
		path = append(mapf.Path{prev.pos}, path...)
		s = prev
	}
	return path
}
