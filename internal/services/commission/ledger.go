package commission

import (
	"commission/internal/models"

	"github.com/shopspring/decimal"
)

// WeeklyLedger tracks how much each natural person has withdrawn per week
// during one run.
type WeeklyLedger struct {
	totals map[models.UserID]map[int]decimal.Decimal
}

// NewWeeklyLedger returns an empty ledger.
func NewWeeklyLedger() *WeeklyLedger {
	return &WeeklyLedger{totals: make(map[models.UserID]map[int]decimal.Decimal)}
}

// Withdrawn returns the running total for the user in the given week,
// creating a zero cell on first access.
func (l *WeeklyLedger) Withdrawn(user models.UserID, week int) decimal.Decimal {
	weeks, ok := l.totals[user]
	if !ok {
		weeks = make(map[int]decimal.Decimal)
		l.totals[user] = weeks
	}
	total, ok := weeks[week]
	if !ok {
		total = decimal.Zero
		weeks[week] = total
	}
	return total
}

// Add records a withdrawal.
func (l *WeeklyLedger) Add(user models.UserID, week int, amount decimal.Decimal) {
	total := l.Withdrawn(user, week)
	l.totals[user][week] = total.Add(amount)
}

// Len reports the number of (user, week) cells.
func (l *WeeklyLedger) Len() int {
	n := 0
	for _, weeks := range l.totals {
		n += len(weeks)
	}
	return n
}
