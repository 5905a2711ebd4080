package main

import (
	"errors"
	"fmt"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/cbs"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

// DemoCommand runs three built-in scenarios: a corridor swap, an
// orthogonal cross, and four agents on an obstacle-filled 8x8 grid.
type DemoCommand struct{}

type demoScenario struct {
	name   string
	grid   *mapf.Grid
	agents []mapf.Agent
}

func demoScenarios() []demoScenario {
	// Row 1 stays the open corridor; (2,0) is reopened as a bypass cell.
	swapGrid := mapf.NewGrid(5, 3)
	for x := 0; x < 5; x++ {
		if x != 2 {
			swapGrid.SetObstacle(x, 0)
			swapGrid.SetObstacle(x, 2)
		}
	}

	crossGrid := mapf.NewGrid(5, 5)

	multiGrid := mapf.NewGrid(8, 8)
	for y := 1; y <= 3; y++ {
		multiGrid.SetObstacle(2, y)
	}
	for y := 4; y <= 6; y++ {
		multiGrid.SetObstacle(5, y)
	}
	multiGrid.SetObstacle(3, 5)

	return []demoScenario{
		{
			name: "Two agents swap positions (corridor with bypass)",
			grid: swapGrid,
			agents: []mapf.Agent{
				{ID: 0, Start: mapf.Position{X: 0, Y: 1}, Goal: mapf.Position{X: 4, Y: 1}},
				{ID: 1, Start: mapf.Position{X: 4, Y: 1}, Goal: mapf.Position{X: 0, Y: 1}},
			},
		},
		{
			name: "Two agents cross paths on a 5x5 grid",
			grid: crossGrid,
			agents: []mapf.Agent{
				{ID: 0, Start: mapf.Position{X: 0, Y: 2}, Goal: mapf.Position{X: 4, Y: 2}},
				{ID: 1, Start: mapf.Position{X: 2, Y: 0}, Goal: mapf.Position{X: 2, Y: 4}},
			},
		},
		{
			name: "Four agents on 8x8 grid with obstacles",
			grid: multiGrid,
			agents: []mapf.Agent{
				{ID: 0, Start: mapf.Position{X: 0, Y: 0}, Goal: mapf.Position{X: 7, Y: 7}},
				{ID: 1, Start: mapf.Position{X: 7, Y: 0}, Goal: mapf.Position{X: 0, Y: 7}},
				{ID: 2, Start: mapf.Position{X: 0, Y: 7}, Goal: mapf.Position{X: 7, Y: 0}},
				{ID: 3, Start: mapf.Position{X: 7, Y: 7}, Goal: mapf.Position{X: 0, Y: 0}},
			},
		},
	}
}

// Run solves each demo scenario and prints the solution, or the
// failure reason, as a timestep-by-timestep grid view.
func (c *DemoCommand) Run() error {
	fmt.Println("Simple CBS (Conflict-Based Search) for MAPF")
	fmt.Println("=============================================")
	fmt.Println()

	for i, s := range demoScenarios() {
		fmt.Printf("=== Test %d: %s ===\n", i+1, s.name)

		result, err := cbs.Plan(s.grid, s.agents, cbs.Limits{})
		if err != nil {
			var planErr *cbs.PlanError
			if errors.As(err, &planErr) {
				fmt.Printf("  No solution found (%s).\n\n", planErr.Reason)
				continue
			}
			return err
		}

		fmt.Printf("  Solved! Cost=%d Expanded=%d Generated=%d\n", result.Cost, result.Expanded, result.Generated)
		printSolution(s.agents, result.Paths, s.grid)
		fmt.Println()
	}
	return nil
}

// printSolution renders each agent's path and a timestep-by-timestep
// grid view.
func printSolution(agents []mapf.Agent, paths []mapf.Path, grid *mapf.Grid) {
	maxT := 0
	for _, p := range paths {
		if len(p) > maxT {
			maxT = len(p)
		}
	}

	for _, a := range agents {
		fmt.Printf("  Agent %d: ", a.ID)
		for t, p := range paths[a.ID] {
			if t > 0 {
				fmt.Print(" -> ")
			}
			fmt.Printf("(%d,%d)", p.X, p.Y)
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Println("  Timestep view:")
	for t := 0; t < maxT; t++ {
		fmt.Printf("  t=%d:\n", t)
		for y := 0; y < grid.Height(); y++ {
			fmt.Print("    ")
			for x := 0; x < grid.Width(); x++ {
				pos := mapf.Position{X: x, Y: y}
				if !grid.IsFree(pos) {
					fmt.Print("#")
					continue
				}
				ch := byte('.')
				for _, a := range agents {
					p := paths[a.ID].At(t)
					if p == pos {
						ch = byte('0' + a.ID)
						break
					}
				}
				fmt.Printf("%c", ch)
			}
			fmt.Println()
		}
	}
}
