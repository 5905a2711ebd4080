package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/cbs"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

// BenchCommand runs the success-rate-vs-agent-count experiment: for
// increasing agent counts, solve a batch of random instances on an open
// grid and report the solved fraction, average time, and average
// counters.
type BenchCommand struct {
	GridSize  int           `default:"8" help:"Side length of the square grid."`
	Instances int           `default:"25" help:"Instances attempted per agent count."`
	NodeLimit int           `default:"5000" help:"Per-instance node budget."`
	TimeLimit time.Duration `default:"10s" help:"Per-instance wall-clock budget."`
	KMin      int           `default:"2" name:"k-min" help:"Smallest agent count tried."`
	KMax      int           `default:"20" name:"k-max" help:"Largest agent count tried."`
	Seed      int64         `default:"12345" help:"RNG seed, for reproducible instance generation."`
}

type benchRow struct {
	k       int
	solved  int
	rate    float64
	avgMS   float64
	avgExp  float64
	avgGen  float64
	avgCost float64
}

// Run executes the bench command.
func (c *BenchCommand) Run() error {
	rng := rand.New(rand.NewSource(c.Seed))
	grid := mapf.NewGrid(c.GridSize, c.GridSize)

	freeCells := make([]mapf.Position, 0, c.GridSize*c.GridSize)
	for y := 0; y < c.GridSize; y++ {
		for x := 0; x < c.GridSize; x++ {
			p := mapf.Position{X: x, Y: y}
			if grid.IsFree(p) {
				freeCells = append(freeCells, p)
			}
		}
	}

	fmt.Println("CBS Stress Test — Success Rate vs Agent Count")
	fmt.Printf("Grid: %dx%d | Free: %d | Instances/k: %d | Node limit: %d | Time limit: %s\n",
		c.GridSize, c.GridSize, len(freeCells), c.Instances, c.NodeLimit, c.TimeLimit)
	fmt.Println(sep(76, '='))
	fmt.Printf("%4s%10s%10s%12s%12s%12s%10s\n", "k", "solved", "rate%", "avg_ms", "avg_exp", "avg_gen", "avg_cost")
	fmt.Println(sep(76, '-'))

	var rows []benchRow
	for k := c.KMin; k <= c.KMax; k++ {
		row := c.runBatch(grid, freeCells, k, rng)
		rows = append(rows, row)

		fmt.Printf("%4d%7d/%-2d%8.0f%%%12.1f%12.0f%12.0f%10.1f\n",
			row.k, row.solved, c.Instances, row.rate, row.avgMS, row.avgExp, row.avgGen, row.avgCost)

		if row.solved == 0 && k > c.KMin+2 {
			fmt.Println("[Stopped: 0% success rate]")
			for kk := k + 1; kk <= c.KMax; kk++ {
				rows = append(rows, benchRow{k: kk})
			}
			break
		}
	}

	fmt.Println()
	fmt.Println(sep(76, '='))
	fmt.Println("Success Rate vs k  (each block = 2%)")
	fmt.Println(sep(76, '-'))
	for _, row := range rows {
		bars := int(row.rate/2.0 + 0.5)
		fmt.Printf("k=%2d |%s%s| %3d%%\n", row.k, barString(bars, '#'), barString(50-bars, ' '), int(row.rate))
	}
	fmt.Println("      " + sep(50, '-'))
	fmt.Println("      0%       20%       40%       60%       80%      100%")

	return nil
}

func (c *BenchCommand) runBatch(grid *mapf.Grid, freeCells []mapf.Position, k int, rng *rand.Rand) benchRow {
	row := benchRow{k: k}
	if len(freeCells) < 2*k {
		return row
	}

	var totalMS, totalExp, totalGen, totalCost float64
	for inst := 0; inst < c.Instances; inst++ {
		agents := randomInstance(freeCells, k, rng)

		start := time.Now()
		result, err := cbs.Plan(grid, agents, cbs.Limits{MaxNodes: &c.NodeLimit})
		elapsed := time.Since(start)

		ok := err == nil
		if ok && elapsed > c.TimeLimit {
			ok = false
		}

		if ok {
			row.solved++
			totalMS += float64(elapsed.Microseconds()) / 1000.0
			totalExp += float64(result.Expanded)
			totalGen += float64(result.Generated)
			totalCost += float64(result.Cost)
		}
	}

	row.rate = 100.0 * float64(row.solved) / float64(c.Instances)
	if row.solved > 0 {
		row.avgMS = totalMS / float64(row.solved)
		row.avgExp = totalExp / float64(row.solved)
		row.avgGen = totalGen / float64(row.solved)
		row.avgCost = totalCost / float64(row.solved)
	}
	return row
}

// randomInstance shuffles the grid's free cells and pairs the first k
// with the next k as start/goal, so no two agents share a start or a
// goal cell.
func randomInstance(freeCells []mapf.Position, k int, rng *rand.Rand) []mapf.Agent {
	shuffled := make([]mapf.Position, len(freeCells))
	copy(shuffled, freeCells)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	agents := make([]mapf.Agent, k)
	for i := 0; i < k; i++ {
		agents[i] = mapf.Agent{ID: i, Start: shuffled[i], Goal: shuffled[k+i]}
	}
	return agents
}

func sep(n int, c byte) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

func barString(n int, c byte) string {
	if n < 0 {
		n = 0
	}
	return sep(n, c)
}
