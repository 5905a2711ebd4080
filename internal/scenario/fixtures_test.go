package scenario

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/cbs"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

// fixture resolves a testdata scenario path relative to this package,
// independent of the working directory `go test` is invoked from.
func fixture(name string) string {
	return filepath.Join("..", "..", "testdata", "scenarios", name)
}

func solveFixture(t *testing.T, name string) (*mapf.Grid, []mapf.Agent, *cbs.Result, error) {
	t.Helper()
	s, err := Load(fixture(name))
	if err != nil {
		t.Fatalf("Load(%s): %v", name, err)
	}
	grid, agents, limits, err := s.Build()
	if err != nil {
		t.Fatalf("Build(%s): %v", name, err)
	}
	result, err := cbs.Plan(grid, agents, limits)
	return grid, agents, result, err
}

func TestFixtureCorridorBypass(t *testing.T) {
	_, _, result, err := solveFixture(t, "corridor_bypass.yaml")
	if err != nil {
		t.Fatalf("expected a solution, got error: %v", err)
	}
	if result.Cost > 10 {
		t.Errorf("expected cost <= 10, got %d", result.Cost)
	}
}

func TestFixtureOrthogonalCross(t *testing.T) {
	_, _, result, err := solveFixture(t, "orthogonal_cross.yaml")
	if err != nil {
		t.Fatalf("expected a solution, got error: %v", err)
	}
	if result.Cost != 9 {
		t.Errorf("expected optimal cost 9, got %d", result.Cost)
	}
}

func TestFixtureSwapAdjacentIsInfeasible(t *testing.T) {
	_, _, _, err := solveFixture(t, "swap_adjacent.yaml")
	var planErr *cbs.PlanError
	if !errors.As(err, &planErr) {
		t.Fatalf("expected a *cbs.PlanError, got %v", err)
	}
	if planErr.Reason != cbs.OpenEmpty && planErr.Reason != cbs.NodeBudgetExhausted {
		t.Errorf("expected open_empty or node_budget_exhausted, got %s", planErr.Reason)
	}
}

func TestFixtureSingleAgentObstacle(t *testing.T) {
	_, _, result, err := solveFixture(t, "single_agent_obstacle.yaml")
	if err != nil {
		t.Fatalf("expected a solution, got error: %v", err)
	}
	if result.Cost != 4 {
		t.Errorf("expected cost 4, got %d", result.Cost)
	}
	if len(result.Paths[0]) != 5 {
		t.Errorf("expected path length 5, got %d", len(result.Paths[0]))
	}
	if result.Expanded != 1 {
		t.Errorf("expected zero CT expansions beyond the root, got %d", result.Expanded)
	}
}

func TestFixtureFourCornersObstacles(t *testing.T) {
	_, agents, result, err := solveFixture(t, "four_corners_obstacles.yaml")
	if err != nil {
		t.Fatalf("expected a solution, got error: %v", err)
	}
	lowerBound := 0
	for _, a := range agents {
		lowerBound += a.Start.Manhattan(a.Goal)
	}
	if result.Cost < lowerBound {
		t.Errorf("cost %d below Manhattan lower bound %d", result.Cost, lowerBound)
	}
	if result.Expanded < 1 {
		t.Errorf("expected expanded >= 1, got %d", result.Expanded)
	}
	if result.Generated < result.Expanded {
		t.Errorf("expected generated >= expanded, got generated=%d expanded=%d", result.Generated, result.Expanded)
	}
}
