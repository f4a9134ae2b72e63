package fee

import (
	"testing"

	"commission/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"1", "1.00"},
		{"1.001", "1.01"},
		{"0.06", "0.06"},
		{"0.0600000001", "0.07"},
		{"87", "87.00"},
		{"0.299", "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundUp(d(tt.in))
			assert.Equal(t, tt.want, got.StringFixed(2))
			assert.True(t, got.GreaterThanOrEqual(d(tt.in)))
		})
	}
}

func TestCashIn(t *testing.T) {
	policy := models.CashInPolicy{
		Percents: d("0.03"),
		Max:      models.Limit{Amount: d("5"), Currency: "EUR"},
	}

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"regular deposit", "200", "0.06"},
		{"capped at maximum", "100000", "5.00"},
		{"zero amount", "0", "0.00"},
		{"fraction rounds up", "1", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CashIn(d(tt.amount), policy).StringFixed(2))
		})
	}
}

func TestCashOutNatural(t *testing.T) {
	policy := models.CashOutNaturalPolicy{
		Percents:  d("0.3"),
		WeekLimit: models.Limit{Amount: d("1000"), Currency: "EUR"},
	}

	tests := []struct {
		name      string
		amount    string
		withdrawn string
		want      string
	}{
		{"within allowance", "1000", "0", "0.00"},
		{"above allowance", "30000", "0", "87.00"},
		{"allowance partly used", "1000", "600", "1.80"},
		{"allowance exhausted", "100", "31000", "0.30"},
		{"withdrawn above limit never goes negative", "100", "5000", "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CashOutNatural(d(tt.amount), d(tt.withdrawn), policy)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestCashOutJuridical(t *testing.T) {
	policy := models.CashOutJuridicalPolicy{
		Percents: d("0.3"),
		Min:      models.Limit{Amount: d("0.5"), Currency: "EUR"},
	}

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"above minimum", "300", "0.90"},
		{"below minimum", "10", "0.50"},
		{"zero amount pays minimum", "0", "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CashOutJuridical(d(tt.amount), policy).StringFixed(2))
		})
	}
}
