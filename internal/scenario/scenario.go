// Package scenario loads a MAPF instance from a YAML file: a grid, an
// agent list, and solver limits.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/cbs"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/mapf"
)

// Scenario is the on-disk shape of a MAPF instance file.
type Scenario struct {
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Obstacles []Cell        `yaml:"obstacles"`
	Agents    []AgentConfig `yaml:"agents"`
	Limits    LimitsConfig  `yaml:"limits"`
}

// Cell is a grid coordinate as it appears in YAML: a two-element
// mapping rather than a tuple, so files stay self-describing.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// AgentConfig is one agent's start/goal pair as it appears in YAML.
type AgentConfig struct {
	ID    int  `yaml:"id"`
	Start Cell `yaml:"start"`
	Goal  Cell `yaml:"goal"`
}

// LimitsConfig mirrors cbs.Limits. MaxNodes is a *int so that an
// omitted max_nodes key (unbounded) and an explicit max_nodes: 0 (stop
// before expanding a single node) parse to different values: yaml.v3
// leaves a pointer field nil when the key is absent and allocates it
// otherwise, even for a literal 0. A zero MaxTimeLowLevel means "use the
// solver's default" exactly as cbs.Plan interprets it.
type LimitsConfig struct {
	MaxNodes        *int `yaml:"max_nodes"`
	MaxTimeLowLevel int  `yaml:"max_time_low_level"`
}

// Load reads and parses a scenario file at path. Environment variables
// of the form ${VAR} are expanded before parsing, so a scenario can
// point at machine-specific values without editing the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	var s Scenario
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	return &s, nil
}

// Build converts a parsed Scenario into the grid/agent/limits values
// the solver operates on, validating agents against the grid.
func (s *Scenario) Build() (*mapf.Grid, []mapf.Agent, cbs.Limits, error) {
	grid := mapf.NewGrid(s.Width, s.Height)
	for _, o := range s.Obstacles {
		grid.SetObstacle(o.X, o.Y)
	}

	agents := make([]mapf.Agent, len(s.Agents))
	for i, a := range s.Agents {
		agents[i] = mapf.Agent{
			ID:    a.ID,
			Start: mapf.Position{X: a.Start.X, Y: a.Start.Y},
			Goal:  mapf.Position{X: a.Goal.X, Y: a.Goal.Y},
		}
	}

	if err := mapf.ValidateAgents(grid, agents); err != nil {
		return nil, nil, cbs.Limits{}, err
	}

	limits := cbs.Limits{
		MaxNodes:        s.Limits.MaxNodes,
		MaxTimeLowLevel: s.Limits.MaxTimeLowLevel,
	}
	return grid, agents, limits, nil
}

// Save writes a Scenario to path as YAML, creating the file (or
// truncating an existing one) with conventional 0644 permissions.
// Used by the instance generator to persist scenarios it invents.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("scenario: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scenario: write %s: %w", path, err)
	}
	return nil
}
