package bfs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsSink receives search telemetry. The hot loop in FindShortestPath
// and FindShortestPathDag always calls through a StatsSink; NoopStats
// gives every call an empty, inlinable body so that enabling or disabling
// statistics never changes anything about the search itself except the
// reported numbers.
type StatsSink interface {
	VertexReached()
	VertexExpanded()
	EdgesExpanded(n int)
	Done(elapsed time.Duration)
}

// NoopStats discards everything. It is the default when a caller passes
// a nil StatsSink.
type NoopStats struct{}

func (NoopStats) VertexReached()             {}
func (NoopStats) VertexExpanded()            {}
func (NoopStats) EdgesExpanded(n int)        {}
func (NoopStats) Done(elapsed time.Duration) {}

// CountingStats accumulates the same counters the reference search tool
// reports on stderr: vertices reached, vertices expanded, edges expanded,
// and wall-clock time.
type CountingStats struct {
	VerticesReached  int64
	VerticesExpanded int64
	EdgesExpandedN   int64
	TimeTaken        time.Duration

	vertexReachedCounter  prometheus.Counter
	vertexExpandedCounter prometheus.Counter
	edgeCounter           prometheus.Counter
	latency               prometheus.Histogram
}

// NewCountingStats returns a CountingStats. If reg is non-nil, it also
// registers Prometheus counters/histogram against reg and mirrors every
// update into them; a nil registerer disables Prometheus export entirely
// while still accumulating the plain Go counters above.
func NewCountingStats(reg prometheus.Registerer) *CountingStats {
	s := &CountingStats{}
	if reg == nil {
		return s
	}
	s.vertexReachedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wikipath_bfs_vertices_reached_total",
		Help: "Vertices marked visited by bidirectional BFS.",
	})
	s.vertexExpandedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wikipath_bfs_vertices_expanded_total",
		Help: "Vertices dequeued and expanded by bidirectional BFS.",
	})
	s.edgeCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wikipath_bfs_edges_expanded_total",
		Help: "Edges examined while expanding BFS fringes.",
	})
	s.latency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "wikipath_bfs_search_duration_seconds",
		Help:    "Wall-clock time of a single bidirectional BFS search.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(s.vertexReachedCounter, s.vertexExpandedCounter, s.edgeCounter, s.latency)
	return s
}

func (s *CountingStats) VertexReached() {
	s.VerticesReached++
	if s.vertexReachedCounter != nil {
		s.vertexReachedCounter.Inc()
	}
}

func (s *CountingStats) VertexExpanded() {
	s.VerticesExpanded++
	if s.vertexExpandedCounter != nil {
		s.vertexExpandedCounter.Inc()
	}
}

func (s *CountingStats) EdgesExpanded(n int) {
	s.EdgesExpandedN += int64(n)
	if s.edgeCounter != nil {
		s.edgeCounter.Add(float64(n))
	}
}

func (s *CountingStats) Done(elapsed time.Duration) {
	s.TimeTaken = elapsed
	if s.latency != nil {
		s.latency.Observe(elapsed.Seconds())
	}
}
