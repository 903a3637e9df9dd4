package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction amounts are never negative; TransactionType carries the sign.
type Transaction struct {
	ID                   int64           `json:"id"`
	Date                 time.Time       `json:"date"`
	PropertiesConceptsID int64           `json:"properties_concepts_id"`
	TransactionType      TransactionType `json:"transaction_type"`
	Period               string          `json:"period"`
	Amount               decimal.Decimal `json:"amount"`
}

// Signed returns the amount as it contributes to the balance.
func (t *Transaction) Signed() decimal.Decimal {
	if t.TransactionType == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
