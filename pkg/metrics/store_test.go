package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestStoreMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.IncAction("addToCart")
	m.IncAction("addToCart")
	m.IncAction("")
	m.IncPersistFailure()
	m.ObservePersist(25 * time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	actions := byName["store_actions_total"]
	require.NotNil(t, actions)
	total := 0.0
	labels := map[string]float64{}
	for _, metric := range actions.GetMetric() {
		value := metric.GetCounter().GetValue()
		total += value
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == "action" {
				labels[pair.GetValue()] = value
			}
		}
	}
	require.Equal(t, 3.0, total)
	require.Equal(t, 2.0, labels["addToCart"])
	require.Equal(t, 1.0, labels["unknown"])

	failures := byName["store_persist_failures_total"]
	require.NotNil(t, failures)
	require.Equal(t, 1.0, failures.GetMetric()[0].GetCounter().GetValue())
}

func TestNilReceiversAreSafe(t *testing.T) {
	var m *StoreMetrics
	m.IncAction("noop")
	m.IncPersistFailure()
	m.ObservePersist(time.Millisecond)

	unregistered := NewStoreMetrics(nil)
	unregistered.IncAction("noop")

	var h *HTTPMetrics
	h.Observe("GET", "2xx", time.Millisecond)
}
