package mapf

// Path is a finite sequence of positions indexed by integer timestep,
// starting at timestep 0. Adjacent entries must satisfy the grid's
// adjacency relation (including waits); a well-formed Path returned by a
// planner is goal-terminated: the last entry is the agent's goal.
type Path []Position

// Cost is the number of moves (including waits) in the path: len-1. The
// empty path (no path found) has cost 0 by convention; callers must check
// for a nil/empty Path separately to distinguish "no path" from "path of
// cost 0".
func (p Path) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// At returns the agent's position at timestep t. Past the end of the
// path the agent is considered to remain at its last position (its
// goal) forever, so a waiting agent still blocks the cell it occupies.
func (p Path) At(t int) Position {
	if t < len(p) {
		return p[t]
	}
	return p[len(p)-1]
}

// SumCost sums Cost() over every path in a joint plan.
func SumCost(paths []Path) int {
	total := 0
	for _, p := range paths {
		total += p.Cost()
	}
	return total
}
