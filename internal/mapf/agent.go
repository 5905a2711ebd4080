package mapf

import "fmt"

// Agent is one participant in a MAPF instance: a dense, non-negative id
// used as an index, a start cell, and a goal cell. Both cells must be
// free on the grid the agent is planned against.
type Agent struct {
	ID          int
	Start, Goal Position
}

// ValidateAgents rejects an agent list that violates the input
// preconditions the core assumes: dense ids (every id in [0,len(agents))
// used exactly once, so internal/cbs can index per-agent path slices
// directly by id), and free start/goal cells. Callers must run this (or
// equivalent checks) before invoking the planners; it is a precondition
// check, not a search error.
func ValidateAgents(grid *Grid, agents []Agent) error {
	seenID := make(map[int]bool, len(agents))
	seenStart := make(map[Position]int, len(agents))
	for _, a := range agents {
		if a.ID < 0 || a.ID >= len(agents) {
			return fmt.Errorf("mapf: agent id %d is out of the dense [0,%d) range required for %d agents", a.ID, len(agents), len(agents))
		}
		if seenID[a.ID] {
			return fmt.Errorf("mapf: duplicate agent id %d", a.ID)
		}
		seenID[a.ID] = true

		if !grid.IsFree(a.Start) {
			return fmt.Errorf("mapf: agent %d start %v is not a free cell", a.ID, a.Start)
		}
		if !grid.IsFree(a.Goal) {
			return fmt.Errorf("mapf: agent %d goal %v is not a free cell", a.ID, a.Goal)
		}
		if other, ok := seenStart[a.Start]; ok {
			return fmt.Errorf("mapf: agents %d and %d share start cell %v", other, a.ID, a.Start)
		}
		seenStart[a.Start] = a.ID
	}
	return nil
}
