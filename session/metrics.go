// SPDX-License-Identifier: MIT

package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/playback"
	"github.com/katalvlaran/walkview/traverse"
)

const metricsNamespace = "walkview"

// Metrics collects session counters and gauges. All methods are safe on a
// nil receiver, which disables collection.
//
// Exposed series (namespace "walkview"):
//
//	traversals_total{kind}        traversal requests computed
//	traversal_order_length        histogram of visitation order lengths
//	playback_steps_total          visual steps applied
//	playback_runs_total{status}   runs finished as done or cancelled
//	edges_rejected_total          AddEdge calls with an unknown endpoint
//	graph_nodes, graph_edges      current store size
type Metrics struct {
	traversals    *prometheus.CounterVec
	orderLength   prometheus.Histogram
	steps         prometheus.Counter
	runs          *prometheus.CounterVec
	rejectedEdges prometheus.Counter
	nodes         prometheus.Gauge
	edges         prometheus.Gauge
}

// NewMetrics registers the session metrics with reg; nil selects
// prometheus.DefaultRegisterer. Registering twice on one registry panics,
// as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		traversals: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "traversals_total",
			Help:      "Traversal orders computed, by kind.",
		}, []string{"kind"}),
		orderLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "traversal_order_length",
			Help:      "Number of nodes in computed visitation orders.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		steps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "playback_steps_total",
			Help:      "Playback steps applied to a surface.",
		}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "playback_runs_total",
			Help:      "Playback runs finished, by final status.",
		}, []string{"status"}),
		rejectedEdges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "edges_rejected_total",
			Help:      "Edges refused because an endpoint does not exist.",
		}),
		nodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the graph store.",
		}),
		edges: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "graph_edges",
			Help:      "Edges in the graph store.",
		}),
	}
}

func (m *Metrics) traversal(res traverse.Result) {
	if m == nil {
		return
	}
	m.traversals.WithLabelValues(string(res.Kind)).Inc()
	m.orderLength.Observe(float64(len(res.Order)))
}

func (m *Metrics) step(playback.StepEvent) {
	if m == nil {
		return
	}
	m.steps.Inc()
}

func (m *Metrics) finish(_ string, st playback.Status) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(st.String()).Inc()
}

func (m *Metrics) edgeRejected() {
	if m == nil {
		return
	}
	m.rejectedEdges.Inc()
}

func (m *Metrics) graph(st core.GraphStats) {
	if m == nil {
		return
	}
	m.nodes.Set(float64(st.NodeCount))
	m.edges.Set(float64(st.EdgeCount))
}
