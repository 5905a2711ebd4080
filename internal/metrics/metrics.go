// Package metrics exposes the solver's observability counters: nodes
// expanded, nodes generated, solve outcomes, and solve duration. The
// counters live on a local prometheus.Registry; Handler serves them
// over HTTP for callers that want scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solver collects counters for one or more CBS solves. The zero value
// is not usable; construct with New.
type Solver struct {
	registry *prometheus.Registry

	solves         *prometheus.CounterVec
	nodesExpanded  prometheus.Counter
	nodesGenerated prometheus.Counter
	solveDuration  prometheus.Histogram
}

// New builds a Solver metrics collector registered against a fresh
// registry. Callers that want to expose /metrics over HTTP use Handler.
func New() *Solver {
	reg := prometheus.NewRegistry()

	s := &Solver{
		registry: reg,
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mapfcbs",
			Name:      "solves_total",
			Help:      "Number of high-level CBS solve attempts, labeled by outcome.",
		}, []string{"outcome"}),
		nodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mapfcbs",
			Name:      "nodes_expanded_total",
			Help:      "Cumulative count of Constraint Tree nodes popped from the open set.",
		}),
		nodesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mapfcbs",
			Name:      "nodes_generated_total",
			Help:      "Cumulative count of Constraint Tree nodes pushed onto the open set.",
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mapfcbs",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time spent inside one Plan call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(s.solves, s.nodesExpanded, s.nodesGenerated, s.solveDuration)
	return s
}

// Observe records the outcome of one Plan call: the counters it
// returned (or, on failure, the counters carried on the PlanError) and
// how long the call took.
func (s *Solver) Observe(outcome string, expanded, generated int, durationSeconds float64) {
	s.solves.WithLabelValues(outcome).Inc()
	s.nodesExpanded.Add(float64(expanded))
	s.nodesGenerated.Add(float64(generated))
	s.solveDuration.Observe(durationSeconds)
}

// Handler returns an http.Handler serving this collector's registry in
// the Prometheus exposition format, for callers that want to run
// `mapfcbs solve --metrics-addr`.
func (s *Solver) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
