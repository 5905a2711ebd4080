// Package cbs implements the high-level Conflict-Based Search: a
// best-first search over a Constraint Tree that coordinates the
// single-agent plans produced by internal/lowlevel into a conflict-free
// joint plan.
package cbs

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/lowlevel"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

// FailureReason classifies why Plan did not return a joint plan.
type FailureReason string

const (
	// NoRootPath means some agent has no path even with an empty
	// constraint set; the instance cannot be solved at all.
	NoRootPath FailureReason = "no_root_path"
	// NodeBudgetExhausted means the node budget (Limits.MaxNodes) was
	// reached with the open set still non-empty.
	NodeBudgetExhausted FailureReason = "node_budget_exhausted"
	// OpenEmpty means the open set drained with no conflict-free node
	// ever found; every branch was pruned by a failed replan.
	OpenEmpty FailureReason = "open_empty"
)

// DefaultMaxTimeLowLevel is the low-level planning horizon used when
// Limits.MaxTimeLowLevel is zero.
const DefaultMaxTimeLowLevel = lowlevel.DefaultMaxTime

// Limits bounds the high-level search. MaxNodes is a *int so a literal
// zero ("stop before expanding a single node") can be told apart from
// "caller left it unset" (nil, meaning unbounded) — callers that want an
// explicit node budget, including a budget of zero, should pass
// IntPtr(n). A zero MaxTimeLowLevel falls back to DefaultMaxTimeLowLevel.
type Limits struct {
	MaxNodes        *int
	MaxTimeLowLevel int
}

// IntPtr returns a pointer to n, for constructing a Limits with an
// explicit MaxNodes budget (including zero).
func IntPtr(n int) *int {
	return &n
}

// Result is the conflict-free joint plan returned on success, plus the
// counters the caller uses for observability.
type Result struct {
	Paths     []mapf.Path
	Cost      int
	Expanded  int
	Generated int
}

// PlanError reports why Plan failed, carrying the counters observed up
// to the point of failure.
type PlanError struct {
	Reason    FailureReason
	Expanded  int
	Generated int
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("cbs: %s (expanded=%d, generated=%d)", e.Reason, e.Expanded, e.Generated)
}

// ErrNoAgents is returned when asked to plan for an empty agent list;
// root construction and conflict detection both presume at least one
// agent.
var ErrNoAgents = errors.New("cbs: no agents")

// ctNode is one node of the Constraint Tree: an accumulated constraint
// set, a path per agent (indexed by agent id), and the sum-of-costs of
// those paths. seq breaks cost ties FIFO, since container/heap is not a
// stable sort.
type ctNode struct {
	constraints []mapf.Constraint
	paths       []mapf.Path
	cost        int
	seq         int
	index       int
}

type openSet []*ctNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].cost != s[j].cost {
		return s[i].cost < s[j].cost
	}
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index = i
	s[j].index = j
}

func (s *openSet) Push(x any) {
	n := x.(*ctNode)
	n.index = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return item
}

func nodeCost(paths []mapf.Path) int {
	return mapf.SumCost(paths)
}

// Plan runs Conflict-Based Search over grid for agents, returning a
// conflict-free joint plan (indexed by agent id) or a *PlanError
// describing why none was found within limits.
//
// Callers must validate agents with mapf.ValidateAgents first; Plan
// assumes those precondition checks already passed and does not repeat
// them.
func Plan(grid *mapf.Grid, agents []mapf.Agent, limits Limits) (*Result, error) {
	if len(agents) == 0 {
		return nil, ErrNoAgents
	}

	maxTimeLowLevel := limits.MaxTimeLowLevel
	if maxTimeLowLevel == 0 {
		maxTimeLowLevel = DefaultMaxTimeLowLevel
	}

	byID := make(map[int]mapf.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	expanded, generated := 0, 0

	// rootPaths and every ctNode.paths derived from it are indexed by
	// real Agent.ID, not by position in agents — mapf.ValidateAgents
	// requires dense ids, so agents[i].ID ranges exactly over
	// [0, len(agents)) and this indexing is safe.
	rootPaths := make([]mapf.Path, len(agents))
	for _, a := range agents {
		path, ok := lowlevel.Plan(grid, a, nil, maxTimeLowLevel)
		if !ok {
			return nil, &PlanError{Reason: NoRootPath, Expanded: expanded, Generated: generated}
		}
		rootPaths[a.ID] = path
	}
	generated++

	root := &ctNode{
		paths: rootPaths,
		cost:  nodeCost(rootPaths),
		seq:   0,
	}

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, root)
	nextSeq := 1

	for open.Len() > 0 {
		if limits.MaxNodes != nil && expanded >= *limits.MaxNodes {
			return nil, &PlanError{Reason: NodeBudgetExhausted, Expanded: expanded, Generated: generated}
		}

		curr := heap.Pop(open).(*ctNode)
		expanded++

		conflict := mapf.FirstConflict(curr.paths)
		if conflict == nil {
			return &Result{
				Paths:     curr.paths,
				Cost:      curr.cost,
				Expanded:  expanded,
				Generated: generated,
			}, nil
		}

		for _, branch := range childConstraints(*conflict) {
			child, ok := expandChild(grid, byID, curr, branch, maxTimeLowLevel)
			if !ok {
				continue
			}
			child.seq = nextSeq
			nextSeq++
			generated++
			heap.Push(open, child)
		}
	}

	return nil, &PlanError{Reason: OpenEmpty, Expanded: expanded, Generated: generated}
}

// childConstraints produces the one new constraint each of the two
// children adds: for a vertex conflict both children forbid the shared
// cell at the shared time, one per agent; for an edge conflict each
// child forbids the traversal in the direction that agent actually
// moved.
func childConstraints(c mapf.Conflict) []mapf.Constraint {
	if !c.IsEdge {
		return []mapf.Constraint{
			{Agent: c.Agent1, Loc: c.Loc, Time: c.Time},
			{Agent: c.Agent2, Loc: c.Loc, Time: c.Time},
		}
	}
	return []mapf.Constraint{
		{Agent: c.Agent1, IsEdge: true, Loc: c.Loc, Loc2: c.Loc2, Time: c.Time},
		{Agent: c.Agent2, IsEdge: true, Loc: c.Loc2, Loc2: c.Loc, Time: c.Time},
	}
}

// expandChild builds one child CT node: parent constraints plus the new
// one, parent paths with the constrained agent's path replaced. Returns
// ok=false if the constrained agent can no longer reach its goal, in
// which case the branch is silently pruned.
func expandChild(grid *mapf.Grid, byID map[int]mapf.Agent, parent *ctNode, c mapf.Constraint, maxTimeLowLevel int) (*ctNode, bool) {
	constraints := make([]mapf.Constraint, len(parent.constraints)+1)
	copy(constraints, parent.constraints)
	constraints[len(parent.constraints)] = c

	agent := byID[c.Agent]
	path, ok := lowlevel.Plan(grid, agent, constraints, maxTimeLowLevel)
	if !ok {
		return nil, false
	}

	// parent.paths is indexed by Agent.ID (see Plan's rootPaths), so
	// c.Agent — itself a real Agent.ID, since FirstConflict's Conflict
	// is built from a paths slice indexed the same way — is used
	// directly rather than re-resolved through a position lookup.
	paths := make([]mapf.Path, len(parent.paths))
	copy(paths, parent.paths)
	paths[c.Agent] = path

	return &ctNode{
		constraints: constraints,
		paths:       paths,
		cost:        nodeCost(paths),
	}, true
}
