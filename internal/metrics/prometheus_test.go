package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "")

	m.PromptSent()
	m.PromptSent()
	m.PromptDeliveryFailed()
	m.BreakReminderSent()
	m.WakeListRebuilt("roll", 7, 3)
	m.WakeListRebuilt("edit", 7, 4)
	m.ConsistencyRepaired(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.promptsSent))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveryFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.breakReminders))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wakeRebuilds.WithLabelValues("roll")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wakeRebuilds.WithLabelValues("edit")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.activeHour))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.wakeListSize))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.consistencyRepair))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "cornbot_prompts_sent_total")
	assert.Contains(t, names, "cornbot_wake_rebuilds_total")
}

func TestPrometheusCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheus(reg, "cornbot")

	assert.Panics(t, func() { NewPrometheus(reg, "cornbot") })
}

func TestNopMetrics(t *testing.T) {
	m := NewNop()
	assert.NotPanics(t, func() {
		m.PromptSent()
		m.PromptDeliveryFailed()
		m.BreakReminderSent()
		m.WakeListRebuilt("roll", 0, 0)
		m.ConsistencyRepaired(1)
	})
}
