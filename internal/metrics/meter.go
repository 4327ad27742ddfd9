package metrics

import (
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"
)

const (
	ElementsProcessedMetricName = "minhash_elements_processed_total"
	ProcessDurationMetricName   = "minhash_process_duration_seconds"
	EstimateMetricName          = "minhash_estimate"
	SlotsMetricName             = "minhash_slots"
	ThreadsMetricName           = "minhash_threads"
)

// Meter defines methods for recording harness metrics.
type Meter interface {
	IncProcessed(command string)
	NewProcessTimer(command string) *Timer
	FlushProcessTimer(t *Timer)
	SetEstimate(command, estimator string, value float64)
	SetShape(slots, threads int)
	WritePrometheus(w io.Writer)
}

// Metrics implements Meter on its own VictoriaMetrics set.
type Metrics struct {
	set *metrics.Set
}

// New creates a new Metrics instance.
func New() *Metrics {
	return &Metrics{set: metrics.NewSet()}
}

func label(name, key, value string) string {
	buf := make([]byte, 0, 64)
	buf = append(buf, name...)
	buf = append(buf, '{')
	buf = append(buf, key...)
	buf = append(buf, `="`...)
	buf = append(buf, value...)
	buf = append(buf, `"}`...)
	return string(buf)
}

// IncProcessed counts one element fed to a sketch.
func (m *Metrics) IncProcessed(command string) {
	m.set.GetOrCreateCounter(label(ElementsProcessedMetricName, "command", command)).Inc()
}

// Timer tracks the start of a Process call.
type Timer struct {
	name  string
	start time.Time
}

func (m *Metrics) NewProcessTimer(command string) *Timer {
	return &Timer{name: label(ProcessDurationMetricName, "command", command), start: time.Now()}
}

// FlushProcessTimer records the time elapsed since the Timer was created into a histogram.
func (m *Metrics) FlushProcessTimer(t *Timer) {
	m.set.GetOrCreateHistogram(t.name).Update(time.Since(t.start).Seconds())
}

// SetEstimate publishes the last estimate of an estimator ("mean" or "median").
func (m *Metrics) SetEstimate(command, estimator string, value float64) {
	name := EstimateMetricName + `{command="` + command + `",estimator="` + estimator + `"}`
	m.set.GetOrCreateGauge(name, nil).Set(value)
}

func (m *Metrics) SetShape(slots, threads int) {
	m.set.GetOrCreateGauge(SlotsMetricName, nil).Set(float64(slots))
	m.set.GetOrCreateGauge(ThreadsMetricName, nil).Set(float64(threads))
}

// WritePrometheus writes every recorded metric in Prometheus text format.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}
