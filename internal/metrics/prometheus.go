package metrics

import (
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements contract.Metrics backed by Prometheus.
type PrometheusCollector struct {
	promptsSent       prometheus.Counter
	deliveryFailures  prometheus.Counter
	breakReminders    prometheus.Counter
	wakeRebuilds      *prometheus.CounterVec
	consistencyRepair prometheus.Counter
	activeHour        prometheus.Gauge
	wakeListSize      prometheus.Gauge
}

var _ contract.Metrics = (*PrometheusCollector)(nil)

// NewPrometheus registers the collectors on reg, or on the default registerer
// when reg is nil. An empty namespace defaults to "cornbot".
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "cornbot"
	}

	p := &PrometheusCollector{
		promptsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompts_sent_total",
			Help:      "Prompts delivered to users.",
		}),
		deliveryFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompt_delivery_failures_total",
			Help:      "Prompts that could not be delivered.",
		}),
		breakReminders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "break_reminders_total",
			Help:      "Break reminders delivered to users.",
		}),
		wakeRebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wake_rebuilds_total",
			Help:      "Wake list rebuilds by reason (roll/edit).",
		}, []string{"reason"}),
		consistencyRepair: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consistency_repairs_total",
			Help:      "Bucket entries added or dropped to match profiles.",
		}),
		activeHour: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_hour",
			Help:      "UTC hour the dispatcher is working in.",
		}),
		wakeListSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wake_list_size",
			Help:      "Number of wakes in the active hour.",
		}),
	}

	reg.MustRegister(
		p.promptsSent,
		p.deliveryFailures,
		p.breakReminders,
		p.wakeRebuilds,
		p.consistencyRepair,
		p.activeHour,
		p.wakeListSize,
	)
	return p
}

func (p *PrometheusCollector) PromptSent() {
	p.promptsSent.Inc()
}

func (p *PrometheusCollector) PromptDeliveryFailed() {
	p.deliveryFailures.Inc()
}

func (p *PrometheusCollector) BreakReminderSent() {
	p.breakReminders.Inc()
}

func (p *PrometheusCollector) WakeListRebuilt(reason string, hour, size int) {
	p.wakeRebuilds.WithLabelValues(reason).Inc()
	p.activeHour.Set(float64(hour))
	p.wakeListSize.Set(float64(size))
}

func (p *PrometheusCollector) ConsistencyRepaired(n int) {
	p.consistencyRepair.Add(float64(n))
}
