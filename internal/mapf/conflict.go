package mapf

// Conflict describes the first incompatibility found between two agents'
// paths: either both occupying the same cell at the same timestep (a
// vertex conflict), or swapping adjacent cells across one timestep (an
// edge conflict).
type Conflict struct {
	Agent1, Agent2 int
	Loc, Loc2      Position // Loc2 only meaningful when IsEdge is true
	Time           int
	IsEdge         bool
}

// FirstConflict scans a joint plan for the lexicographically first
// conflict, under the pair-outer/time-inner scan order: agent pairs
// (a1, a2) with a1 < a2 in ascending order, and within each pair,
// timesteps from 0 upward. Positions past the end of a path hold at that
// path's final position (its goal). Returns nil if the plan is
// conflict-free.
//
// paths must be indexed by real Agent.ID, not by an arbitrary input
// order: the returned Conflict's Agent1/Agent2 are the slice positions
// a1/a2 themselves, and callers (internal/cbs) use them directly as
// agent ids to build Constraint.Agent and to index per-agent path
// slices. ValidateAgents' dense-id precondition is what makes this safe.
func FirstConflict(paths []Path) *Conflict {
	maxT := 0
	for _, p := range paths {
		if len(p) > maxT {
			maxT = len(p)
		}
	}

	for a1 := 0; a1 < len(paths); a1++ {
		for a2 := a1 + 1; a2 < len(paths); a2++ {
			p1, p2 := paths[a1], paths[a2]
			for t := 0; t < maxT; t++ {
				pos1, pos2 := p1.At(t), p2.At(t)

				if pos1 == pos2 {
					return &Conflict{Agent1: a1, Agent2: a2, Loc: pos1, Loc2: pos1, Time: t}
				}

				if t+1 < maxT {
					next1, next2 := p1.At(t+1), p2.At(t+1)
					if pos1 == next2 && pos2 == next1 {
						return &Conflict{
							Agent1: a1, Agent2: a2,
							Loc: pos1, Loc2: pos2,
							Time:   t + 1,
							IsEdge: true,
						}
					}
				}
			}
		}
	}
	return nil
}
