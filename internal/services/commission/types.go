package commission

import (
	"github.com/shopspring/decimal"
)

// Result is the fee computed for one transaction.
type Result struct {
	Category string
	Fee      decimal.Decimal
}

// String formats the fee with exactly two decimals.
func (r Result) String() string {
	return r.Fee.StringFixed(2)
}

// MetricsCollector defines the interface for collecting processing metrics
type MetricsCollector interface {
	RecordFee(category string, fee decimal.Decimal)
	RecordError(errType string)
}
