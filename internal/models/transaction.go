package models

import (
	"github.com/shopspring/decimal"
)

// Operation types
const (
	OperationTypeCashIn  OperationType = "cash_in"
	OperationTypeCashOut OperationType = "cash_out"
)

// OperationType is the direction of a transaction.
type OperationType string

// Operation carries the money part of a transaction.
type Operation struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency" validate:"required"`
}

// Transaction is a single input record.
//
// UserType is only consulted for cash-out operations.
type Transaction struct {
	Date      Date          `json:"date"`
	UserID    UserID        `json:"user_id" validate:"required"`
	UserType  UserType      `json:"user_type"`
	Type      OperationType `json:"type" validate:"required"`
	Operation Operation     `json:"operation"`
}
