package fee

import (
	"commission/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundUp rounds d up to the next cent. Whole cents are left as they are.
func RoundUp(d decimal.Decimal) decimal.Decimal {
	return d.RoundCeil(2)
}

func percentOf(amount, percents decimal.Decimal) decimal.Decimal {
	return amount.Mul(percents).Div(hundred)
}

// CashIn charges percents of the deposit, capped at the policy maximum.
func CashIn(amount decimal.Decimal, policy models.CashInPolicy) decimal.Decimal {
	fee := percentOf(amount, policy.Percents)
	return RoundUp(decimal.Min(fee, policy.Max.Amount))
}

// CashOutNatural charges only the part of amount that exceeds what is left
// of the weekly allowance after withdrawnThisWeek.
func CashOutNatural(amount, withdrawnThisWeek decimal.Decimal, policy models.CashOutNaturalPolicy) decimal.Decimal {
	remaining := decimal.Max(decimal.Zero, policy.WeekLimit.Amount.Sub(withdrawnThisWeek))
	taxable := decimal.Max(decimal.Zero, amount.Sub(remaining))
	return RoundUp(percentOf(taxable, policy.Percents))
}

// CashOutJuridical charges percents of the withdrawal but never less than
// the policy minimum.
func CashOutJuridical(amount decimal.Decimal, policy models.CashOutJuridicalPolicy) decimal.Decimal {
	fee := percentOf(amount, policy.Percents)
	return RoundUp(decimal.Max(fee, policy.Min.Amount))
}
