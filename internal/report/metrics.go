package report

import (
	"benchgate/internal/benchmark"
	"benchgate/internal/requirements"
	"benchgate/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the gauges exported for one analysis run.
type Metrics struct {
	ResultTime       *prometheus.GaugeVec
	ResultChange     *prometheus.GaugeVec
	Overhead         *prometheus.GaugeVec
	CheckPassed      *prometheus.GaugeVec
	RequirementState *prometheus.GaugeVec
}

// NewMetrics creates the gauges without registering them anywhere.
func NewMetrics() *Metrics {
	m := &Metrics{}

	m.ResultTime = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchmark_time_milliseconds",
			Help: "Point estimate of the benchmark time in milliseconds",
		},
		[]string{"benchmark"},
	)

	m.ResultChange = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchmark_change_percent",
			Help: "Change reported against the previous benchmark run, in percent",
		},
		[]string{"benchmark"},
	)

	m.Overhead = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchmark_overhead_percent",
			Help: "Level time as a percentage of the baseline time",
		},
		[]string{"requirement", "project"},
	)

	m.CheckPassed = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchmark_overhead_check_passed",
			Help: "1 if the project is within the requirement threshold, 0 otherwise",
		},
		[]string{"requirement", "project"},
	)

	m.RequirementState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "benchmark_requirement_passed",
			Help: "1 if the requirement passed across all projects, 0 if it failed",
		},
		[]string{"requirement"},
	)

	return m
}

// Observe records the store and the validation summary.
// Requirements that were not evaluated are left out.
func (m *Metrics) Observe(store *benchmark.Store, summary requirements.Summary) {
	for _, r := range store.All() {
		m.ResultTime.WithLabelValues(r.Name).Set(r.TimeMs)
		if r.HasChange() {
			m.ResultChange.WithLabelValues(r.Name).Set(*r.ChangePct)
		}
	}

	for _, c := range summary.Checks {
		m.Overhead.WithLabelValues(c.Requirement.ID, c.Project).Set(c.Comparison.Overhead)
		m.CheckPassed.WithLabelValues(c.Requirement.ID, c.Project).Set(boolToFloat(c.Passed))
	}

	for _, o := range summary.Outcomes {
		if !o.Outcome.Evaluated() {
			continue
		}
		m.RequirementState.WithLabelValues(o.Requirement.ID).Set(boolToFloat(o.Outcome == requirements.Pass))
	}
}

// WriteFile writes all gauges to path in the Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	return telemetry.WriteMetricsFile(path,
		m.ResultTime, m.ResultChange, m.Overhead, m.CheckPassed, m.RequirementState)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
