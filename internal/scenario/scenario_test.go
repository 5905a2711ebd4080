package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp scenario: %v", err)
	}
	return path
}

func TestLoadAndBuild(t *testing.T) {
	path := writeTemp(t, `
width: 5
height: 5
obstacles:
  - {x: 1, y: 1}
agents:
  - id: 0
    start: {x: 0, y: 0}
    goal: {x: 4, y: 4}
  - id: 1
    start: {x: 4, y: 0}
    goal: {x: 0, y: 4}
limits:
  max_nodes: 500
  max_time_low_level: 100
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	grid, agents, limits, err := s.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if grid.Width() != 5 || grid.Height() != 5 {
		t.Errorf("expected a 5x5 grid, got %dx%d", grid.Width(), grid.Height())
	}
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
	if limits.MaxNodes == nil || *limits.MaxNodes != 500 || limits.MaxTimeLowLevel != 100 {
		t.Errorf("unexpected limits: %+v", limits)
	}
}

func TestLoadLeavesMaxNodesUnsetWhenAbsent(t *testing.T) {
	path := writeTemp(t, `
width: 3
height: 3
agents:
  - id: 0
    start: {x: 0, y: 0}
    goal: {x: 2, y: 2}
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	_, _, limits, err := s.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if limits.MaxNodes != nil {
		t.Errorf("expected MaxNodes to stay nil when max_nodes is absent, got %d", *limits.MaxNodes)
	}
}

func TestLoadKeepsLiteralZeroMaxNodes(t *testing.T) {
	path := writeTemp(t, `
width: 3
height: 3
agents:
  - id: 0
    start: {x: 0, y: 0}
    goal: {x: 2, y: 2}
limits:
  max_nodes: 0
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	_, _, limits, err := s.Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if limits.MaxNodes == nil || *limits.MaxNodes != 0 {
		t.Errorf("expected a literal MaxNodes of 0, got %v", limits.MaxNodes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestBuildRejectsInvalidAgents(t *testing.T) {
	path := writeTemp(t, `
width: 3
height: 3
agents:
  - id: 0
    start: {x: 0, y: 0}
    goal: {x: 2, y: 2}
  - id: 0
    start: {x: 1, y: 0}
    goal: {x: 1, y: 2}
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, _, _, err := s.Build(); err == nil {
		t.Error("expected Build to reject duplicate agent ids")
	}
}
