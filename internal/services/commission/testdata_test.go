package commission

import (
	"time"

	"commission/internal/models"

	"github.com/shopspring/decimal"
)

func testPolicies() models.Policies {
	return models.Policies{
		CashIn: models.CashInPolicy{
			Percents: decimal.RequireFromString("0.03"),
			Max:      models.Limit{Amount: decimal.NewFromInt(5), Currency: "EUR"},
		},
		CashOutNatural: models.CashOutNaturalPolicy{
			Percents:  decimal.RequireFromString("0.3"),
			WeekLimit: models.Limit{Amount: decimal.NewFromInt(1000), Currency: "EUR"},
		},
		CashOutJuridical: models.CashOutJuridicalPolicy{
			Percents: decimal.RequireFromString("0.3"),
			Min:      models.Limit{Amount: decimal.RequireFromString("0.5"), Currency: "EUR"},
		},
	}
}

func tx(date string, user string, userType models.UserType, opType models.OperationType, amount string, currency string) models.Transaction {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:     models.Date{Time: t},
		UserID:   models.UserID(user),
		UserType: userType,
		Type:     opType,
		Operation: models.Operation{
			Amount:   decimal.RequireFromString(amount),
			Currency: currency,
		},
	}
}

const referenceInput = `[
  { "date": "2016-01-05", "user_id": 1, "user_type": "natural", "type": "cash_in", "operation": { "amount": 200.00, "currency": "EUR" } },
  { "date": "2016-01-06", "user_id": 2, "user_type": "juridical", "type": "cash_out", "operation": { "amount": 300.00, "currency": "EUR" } },
  { "date": "2016-01-06", "user_id": 1, "user_type": "natural", "type": "cash_out", "operation": { "amount": 30000, "currency": "EUR" } },
  { "date": "2016-01-07", "user_id": 1, "user_type": "natural", "type": "cash_out", "operation": { "amount": 1000.00, "currency": "EUR" } },
  { "date": "2016-01-07", "user_id": 1, "user_type": "natural", "type": "cash_out", "operation": { "amount": 100.00, "currency": "EUR" } },
  { "date": "2016-01-10", "user_id": 1, "user_type": "natural", "type": "cash_out", "operation": { "amount": 100.00, "currency": "EUR" } },
  { "date": "2016-01-10", "user_id": 2, "user_type": "juridical", "type": "cash_in", "operation": { "amount": 1000000.00, "currency": "EUR" } },
  { "date": "2016-01-10", "user_id": 3, "user_type": "natural", "type": "cash_out", "operation": { "amount": 1000.00, "currency": "EUR" } },
  { "date": "2016-02-15", "user_id": 1, "user_type": "natural", "type": "cash_out", "operation": { "amount": 300.00, "currency": "EUR" } }
]`

const referenceOutput = "0.06\n0.90\n87.00\n3.00\n0.30\n0.30\n5.00\n0.00\n0.00\n"
