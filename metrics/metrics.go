package metrics

import "github.com/prometheus/client_golang/prometheus"

// To add a new counter: declare it below, then register it in Register().
var (
	spIterationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sid_sp_iterations_total",
		Help: "Total Survey Propagation iterations run across every SID invocation.",
	})

	sidIterationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sid_sid_iterations_total",
		Help: "Total outer SID loop iterations run.",
	})

	walksatFlipsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sid_ws_flips_total",
		Help: "Total WalkSAT variable flips performed across every fallback invocation.",
	})

	decimationFixedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sid_decimation_fixed_total",
		Help: "Total variables fixed by decimation (bias ranking, excluding cascading unit propagation).",
	})
)

// Register adds every counter above to the default Prometheus registry. The
// CLI calls this once, only when --metrics-addr is set, so a library
// consumer that never asks for the debug exporter never touches the global
// registry.
func Register() {
	prometheus.MustRegister(spIterationsTotal)
	prometheus.MustRegister(sidIterationsTotal)
	prometheus.MustRegister(walksatFlipsTotal)
	prometheus.MustRegister(decimationFixedTotal)
}

// ObserveResult folds one solver.Result's stats into the registered
// counters. Safe to call even if Register was never invoked, since
// incrementing an unregistered prometheus.Counter is a normal, harmless
// operation — it simply won't be scraped.
func ObserveResult(spIterations, sidIterations, wsFlips, decimationFixed int) {
	spIterationsTotal.Add(float64(spIterations))
	sidIterationsTotal.Add(float64(sidIterations))
	walksatFlipsTotal.Add(float64(wsFlips))
	decimationFixedTotal.Add(float64(decimationFixed))
}
