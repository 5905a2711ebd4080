package lowlevel

import (
	"testing"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

func openGrid(n int) *mapf.Grid {
	return mapf.NewGrid(n, n)
}

func TestPlanStraightLine(t *testing.T) {
	grid := openGrid(5)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 4, Y: 0}}

	path, ok := Plan(grid, agent, nil, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a path")
	}
	if path.Cost() != 4 {
		t.Errorf("expected cost 4, got %d", path.Cost())
	}
	if path[0] != agent.Start || path[len(path)-1] != agent.Goal {
		t.Errorf("path must start at agent.Start and end at agent.Goal, got %v", path)
	}
}

func TestPlanAroundObstacle(t *testing.T) {
	grid := mapf.NewGrid(3, 3)
	grid.SetObstacle(1, 1)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 2, Y: 2}}

	path, ok := Plan(grid, agent, nil, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a path")
	}
	if path.Cost() != 4 {
		t.Errorf("expected cost 4 around the obstacle, got %d", path.Cost())
	}
	for _, p := range path {
		if p == (mapf.Position{X: 1, Y: 1}) {
			t.Error("path passes through the obstacle")
		}
	}
}

func TestPlanStartEqualsGoalNoConstraint(t *testing.T) {
	grid := openGrid(3)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 1, Y: 1}, Goal: mapf.Position{X: 1, Y: 1}}

	path, ok := Plan(grid, agent, nil, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a trivial path")
	}
	if len(path) != 1 || path[0] != agent.Start {
		t.Errorf("expected single-element path [start], got %v", path)
	}
	if path.Cost() != 0 {
		t.Errorf("expected cost 0, got %d", path.Cost())
	}
}

func TestPlanStartEqualsGoalButConstrainedAtZero(t *testing.T) {
	grid := openGrid(3)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 1, Y: 1}, Goal: mapf.Position{X: 1, Y: 1}}
	constraints := []mapf.Constraint{
		{Agent: 0, Loc: mapf.Position{X: 1, Y: 1}, Time: 0},
	}

	path, ok := Plan(grid, agent, constraints, DefaultMaxTime)
	if !ok {
		t.Fatal("expected agent to move away and return")
	}
	if len(path) == 1 {
		t.Error("expected the agent to be forced off its start cell, not return the trivial path")
	}
	if path[len(path)-1] != agent.Goal {
		t.Errorf("expected path to end at goal, got %v", path)
	}
}

func TestPlanRespectsVertexConstraint(t *testing.T) {
	grid := openGrid(5)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 2, Y: 0}}
	// Force a detour: forbid the direct-path cell at the time it would
	// naturally be occupied.
	constraints := []mapf.Constraint{
		{Agent: 0, Loc: mapf.Position{X: 1, Y: 0}, Time: 1},
	}

	path, ok := Plan(grid, agent, constraints, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a path that detours around the constraint")
	}
	for t2, p := range path {
		if p == (mapf.Position{X: 1, Y: 0}) && t2 == 1 {
			t.Error("path violates the vertex constraint")
		}
	}
}

func TestPlanRespectsEdgeConstraint(t *testing.T) {
	grid := openGrid(5)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 1, Y: 0}}
	constraints := []mapf.Constraint{
		{Agent: 0, IsEdge: true, Loc: mapf.Position{X: 0, Y: 0}, Loc2: mapf.Position{X: 1, Y: 0}, Time: 1},
	}

	path, ok := Plan(grid, agent, constraints, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a path that avoids the forbidden edge traversal")
	}
	for i := 1; i < len(path); i++ {
		if path[i-1] == (mapf.Position{X: 0, Y: 0}) && path[i] == (mapf.Position{X: 1, Y: 0}) && i == 1 {
			t.Error("path uses the forbidden edge at the forbidden time")
		}
	}
}

func TestPlanIgnoresConstraintsForOtherAgents(t *testing.T) {
	grid := openGrid(5)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 2, Y: 0}}
	constraints := []mapf.Constraint{
		{Agent: 1, Loc: mapf.Position{X: 1, Y: 0}, Time: 1},
	}

	path, ok := Plan(grid, agent, constraints, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a path")
	}
	if path.Cost() != 2 {
		t.Errorf("constraint targeting a different agent should not force a detour, got cost %d", path.Cost())
	}
}

func TestPlanFailsBeyondMaxTime(t *testing.T) {
	grid := openGrid(10)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 9, Y: 9}}

	if _, ok := Plan(grid, agent, nil, 3); ok {
		t.Error("expected failure: goal is 18 steps away but horizon is 3")
	}
}

func TestPlanAdmissibleAgainstBFS(t *testing.T) {
	grid := mapf.NewGrid(6, 6)
	grid.SetObstacle(2, 0)
	grid.SetObstacle(2, 1)
	grid.SetObstacle(2, 2)
	grid.SetObstacle(2, 3)
	agent := mapf.Agent{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 5, Y: 5}}

	path, ok := Plan(grid, agent, nil, DefaultMaxTime)
	if !ok {
		t.Fatal("expected a path")
	}

	want := bfsShortest(grid, agent.Start, agent.Goal)
	if path.Cost() != want {
		t.Errorf("expected cost %d matching BFS shortest path, got %d", want, path.Cost())
	}
}

// bfsShortest computes the shortest path length on the static grid
// (ignoring time/constraints), used as an independent oracle for the
// low-level planner's admissibility under the empty constraint set.
func bfsShortest(grid *mapf.Grid, start, goal mapf.Position) int {
	type item struct {
		pos   mapf.Position
		depth int
	}
	visited := map[mapf.Position]bool{start: true}
	queue := []item{{pos: start, depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.pos == goal {
			return cur.depth
		}
		for _, n := range grid.Neighbors(cur.pos) {
			if n == cur.pos || visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, item{pos: n, depth: cur.depth + 1})
		}
	}
	return -1
}
