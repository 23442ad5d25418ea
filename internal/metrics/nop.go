package metrics

import "github.com/alanwells064/cornbot/internal/domain/contract"

// NopMetrics discards everything. Used in tests and when metrics are off.
type NopMetrics struct{}

var _ contract.Metrics = (*NopMetrics)(nil)

func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (n *NopMetrics) PromptSent() {}
func (n *NopMetrics) PromptDeliveryFailed() {}
func (n *NopMetrics) BreakReminderSent() {}
func (n *NopMetrics) WakeListRebuilt(_ string, _ int, _ int) {}
func (n *NopMetrics) ConsistencyRepaired(_ int) {}
