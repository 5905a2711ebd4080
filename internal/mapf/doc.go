// Package mapf defines the shared value types for multi-agent path finding
// on a 4-connected grid: positions, the grid itself, agents, paths,
// constraints, and conflicts. It owns no search logic — the low-level
// space-time planner lives in internal/lowlevel and the high-level
// Conflict-Based Search lives in internal/cbs. Both depend on this
// package; it depends on neither.
package mapf
