package models

import "github.com/shopspring/decimal"

// Limit is a money bound inside a fee policy document.
type Limit struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

// CashInPolicy caps deposit fees at Max.
type CashInPolicy struct {
	Percents decimal.Decimal `json:"percents"`
	Max      Limit           `json:"max"`
}

// CashOutNaturalPolicy gives natural persons WeekLimit of fee-free
// withdrawals per week.
type CashOutNaturalPolicy struct {
	Percents  decimal.Decimal `json:"percents"`
	WeekLimit Limit           `json:"week_limit"`
}

// CashOutJuridicalPolicy charges legal entities at least Min per withdrawal.
type CashOutJuridicalPolicy struct {
	Percents decimal.Decimal `json:"percents"`
	Min      Limit           `json:"min"`
}

// Policies is the fee configuration for one processing run.
type Policies struct {
	CashIn           CashInPolicy           `json:"cash_in"`
	CashOutNatural   CashOutNaturalPolicy   `json:"cash_out_natural"`
	CashOutJuridical CashOutJuridicalPolicy `json:"cash_out_juridical"`
}
