package schedmetrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder collects run-scoped counters/histograms. NewRecorder populates its
// collectors and Register exposes them to a registry. The Observe methods of
// a nil or zero-value Recorder are no-ops, so callers that don't want metrics
// can leave it unset.
type Recorder struct {
	clustersSolved  prometheus.Counter
	solveDuration   prometheus.Histogram
	eventsEmitted   *prometheus.CounterVec
	solverTimeouts  prometheus.Counter
}

// NewRecorder builds a Recorder with fresh collectors, ready to Register.
func NewRecorder() *Recorder {
	return &Recorder{
		clustersSolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pnpsched",
			Name:      "clusters_solved_total",
			Help:      "Number of placement clusters successfully routed.",
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pnpsched",
			Name:      "cluster_solve_duration_seconds",
			Help:      "Wall-clock time spent solving one cluster's routing MIP.",
			Buckets:   prometheus.DefBuckets,
		}),
		eventsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pnpsched",
			Name:      "events_emitted_total",
			Help:      "Number of schedule events emitted, by kind.",
		}, []string{"kind"}),
		solverTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pnpsched",
			Name:      "solver_timeouts_total",
			Help:      "Number of clusters whose solve hit the time limit without an incumbent.",
		}),
	}
}

// Register adds every collector to reg. Call once per process.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{r.clustersSolved, r.solveDuration, r.eventsEmitted, r.solverTimeouts} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// ObserveClusterSolved records one successful cluster solve and its duration.
func (r *Recorder) ObserveClusterSolved(durationSeconds float64) {
	if r == nil || r.clustersSolved == nil {
		return
	}
	r.clustersSolved.Inc()
	r.solveDuration.Observe(durationSeconds)
}

// ObserveSolverTimeout records a cluster whose solve timed out with no incumbent.
func (r *Recorder) ObserveSolverTimeout() {
	if r == nil || r.solverTimeouts == nil {
		return
	}
	r.solverTimeouts.Inc()
}

// ObserveEvent increments the emitted-event counter for kind.
func (r *Recorder) ObserveEvent(kind string) {
	if r == nil || r.eventsEmitted == nil {
		return
	}
	r.eventsEmitted.WithLabelValues(kind).Inc()
}
