package metrics

import "time"

// Collector receives ledger operation metrics.
type Collector interface {
	RecordOperation(operation, outcome string, duration time.Duration)
	UpdateAccountBalance(account string, balance float64)
}

// NoOpCollector discards everything.
type NoOpCollector struct{}

func (NoOpCollector) RecordOperation(operation, outcome string, duration time.Duration) {}
func (NoOpCollector) UpdateAccountBalance(account string, balance float64)              {}

var (
	_ Collector = NoOpCollector{}
	_ Collector = (*PrometheusCollector)(nil)
)
