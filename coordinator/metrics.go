package coordinator

import "github.com/prometheus/client_golang/prometheus"

// metricsSet is the Prometheus surface of spec.md §6.3's stdout stats
// lines — the same numbers PrintStats logs, scrapeable for a caller
// that embeds the Coordinator in a longer-running service rather than
// a one-shot CLI (the ambient observability stack SPEC_FULL.md adds
// around the distilled spec).
type metricsSet struct {
	registry *prometheus.Registry

	cores                    prometheus.Gauge
	simplificationWallSecond prometheus.Gauge
	cpuSeconds               prometheus.Gauge
	idleWallSecondsSum       prometheus.Gauge
	conflictsSum             prometheus.Gauge
	decisionsSum             prometheus.Gauge
	restartsSum              prometheus.Gauge
}

func newMetricsSet() *metricsSet {
	m := &metricsSet{
		registry: prometheus.NewRegistry(),
		cores: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_cores",
			Help: "Number of portfolio worker cores in use.",
		}),
		simplificationWallSecond: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_simplification_wall_seconds",
			Help: "Wall-clock seconds spent in primary-only preprocessing.",
		}),
		cpuSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_cpu_seconds",
			Help: "Wall-clock seconds since the Coordinator was built, the value of the CPU time stats line; process CPU time is not measured.",
		}),
		idleWallSecondsSum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_idle_wall_seconds_sum",
			Help: "Sum, across workers, of wall seconds spent idling at the barrier.",
		}),
		conflictsSum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_conflicts_sum",
			Help: "Sum, across workers, of CDCL conflicts encountered.",
		}),
		decisionsSum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_decisions_sum",
			Help: "Sum, across workers, of branching decisions made.",
		}),
		restartsSum: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parsat_restarts_sum",
			Help: "Sum, across workers, of restarts performed.",
		}),
	}
	m.registry.MustRegister(
		m.cores,
		m.simplificationWallSecond,
		m.cpuSeconds,
		m.idleWallSecondsSum,
		m.conflictsSum,
		m.decisionsSum,
		m.restartsSum,
	)
	return m
}
