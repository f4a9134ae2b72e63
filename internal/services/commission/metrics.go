package commission

import "github.com/shopspring/decimal"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordFee(string, decimal.Decimal) {}
func (n *NoopMetricsCollector) RecordError(string)                {}
