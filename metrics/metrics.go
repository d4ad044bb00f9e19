// Package metrics defines the Prometheus instruments exported by lvroute.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvroute/dijkstra"
)

// Query outcomes used as the outcome label.
const (
	OutcomeOK       = "ok"
	OutcomeNoPath   = "no_path"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics groups every instrument. Create one per registry with New.
type Metrics struct {
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	GraphNodes    prometheus.Gauge
	GraphEdges    prometheus.Gauge
	Reloads       *prometheus.CounterVec
}

// New registers the instruments on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvroute_queries_total",
			Help: "Total number of route queries, labelled by operation and outcome.",
		}, []string{"op", "outcome"}),

		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvroute_query_duration_seconds",
			Help:    "Route query latency in seconds.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"op"}),

		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvroute_graph_nodes",
			Help: "Number of locations in the served graph.",
		}),

		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "lvroute_graph_edges",
			Help: "Number of directed segments in the served graph.",
		}),

		Reloads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvroute_reloads_total",
			Help: "Total number of graph loads, labelled by outcome.",
		}, []string{"outcome"}),
	}
}

// Outcome classifies a query error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dijkstra.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, dijkstra.ErrEndpointNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}

// ObserveQuery counts one query and records its latency since start.
func (m *Metrics) ObserveQuery(op string, start time.Time, err error) {
	m.Queries.WithLabelValues(op, Outcome(err)).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// SetGraphSize publishes the size of the graph now being served.
func (m *Metrics) SetGraphSize(nodes, edges int) {
	m.GraphNodes.Set(float64(nodes))
	m.GraphEdges.Set(float64(edges))
}

// ObserveReload counts a load attempt.
func (m *Metrics) ObserveReload(err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.Reloads.WithLabelValues(outcome).Inc()
}
