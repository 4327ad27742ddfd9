package metrics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.SetShape(1024, 4)
	for i := 0; i < 3; i++ {
		timer := m.NewProcessTimer("simulate")
		m.IncProcessed("simulate")
		m.FlushProcessTimer(timer)
	}
	m.SetEstimate("simulate", "median", 512.5)

	var buf bytes.Buffer
	m.WritePrometheus(&buf)
	out := buf.String()

	require.Contains(t, out, `minhash_elements_processed_total{command="simulate"} 3`)
	require.Contains(t, out, `minhash_estimate{command="simulate",estimator="median"} 512.5`)
	require.Contains(t, out, "minhash_slots 1024")
	require.Contains(t, out, "minhash_threads 4")
	require.Contains(t, out, `minhash_process_duration_seconds_count{command="simulate"} 3`)
}

// Each Metrics value records into its own set.
func TestMetricsIsolated(t *testing.T) {
	a, b := New(), New()
	a.IncProcessed("count")

	var buf bytes.Buffer
	b.WritePrometheus(&buf)
	require.NotContains(t, buf.String(), "minhash_elements_processed_total")
}
