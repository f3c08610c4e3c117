package dag

import "github.com/prometheus/client_golang/prometheus"

// SetPathCounter registers a wikipath_enumerate_paths_total counter
// against reg and makes subsequent EnumeratePaths/PathIterator calls on d
// mirror every path they visit into it. A nil reg disables the mirror,
// following the same nil-registerer-disables pattern as bfs.CountingStats;
// this is the default, since the library never starts its own metrics
// server.
func (d *AnnotatedDag) SetPathCounter(reg prometheus.Registerer) {
	if reg == nil {
		return
	}
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wikipath_enumerate_paths_total",
		Help: "Paths visited via EnumeratePaths or PathIterator.",
	})
	reg.MustRegister(c)
	d.pathCounter = c
}
