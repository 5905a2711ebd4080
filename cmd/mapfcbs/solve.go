package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/elektrokombinacija/mapf-cbs-solver/internal/cbs"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/metrics"
	"github.com/elektrokombinacija/mapf-cbs-solver/internal/scenario"
)

// SolveCommand loads a scenario file, runs the high-level solver, and
// prints the resulting joint plan (or the failure reason).
type SolveCommand struct {
	Path        string `arg:"" help:"Path to a scenario YAML file." type:"path"`
	MetricsAddr string `name:"metrics-addr" help:"If set, serve Prometheus metrics on this address while solving (e.g. :9100)."`
}

// Run executes the solve command.
func (c *SolveCommand) Run() error {
	s, err := scenario.Load(c.Path)
	if err != nil {
		return err
	}

	grid, agents, limits, err := s.Build()
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	collector := metrics.New()
	if c.MetricsAddr != "" {
		go func() {
			log.Info("serving metrics", "addr", c.MetricsAddr)
			if err := http.ListenAndServe(c.MetricsAddr, collector.Handler()); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	start := time.Now()
	result, err := cbs.Plan(grid, agents, limits)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		var planErr *cbs.PlanError
		if errors.As(err, &planErr) {
			collector.Observe(string(planErr.Reason), planErr.Expanded, planErr.Generated, elapsed)
		}
		return err
	}

	collector.Observe("solved", result.Expanded, result.Generated, elapsed)

	log.Info("solved", "cost", result.Cost, "expanded", result.Expanded, "generated", result.Generated)
	for _, a := range agents {
		fmt.Printf("agent %d: %v\n", a.ID, result.Paths[a.ID])
	}
	return nil
}
