package dtos

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/seba-moreno/real-estate-tracker/internal/models"
)

type TransactionRequest struct {
	Date                 civil.Date       `json:"date" validate:"required"`
	PropertiesConceptsID int64            `json:"properties_concepts_id" validate:"gte=1"`
	TransactionType      string           `json:"transaction_type" validate:"required,oneof=income expense"`
	Period               string           `json:"period" validate:"required,period"`
	Amount               *decimal.Decimal `json:"amount" validate:"required,money"`
}

// Normalize lower-cases transaction_type so "Income" and " EXPENSE " are accepted.
func (r *TransactionRequest) Normalize() {
	r.TransactionType = strings.ToLower(strings.TrimSpace(r.TransactionType))
	r.Period = strings.TrimSpace(r.Period)
}

func (r *TransactionRequest) ToModel(id int64) *models.Transaction {
	t := &models.Transaction{
		ID:                   id,
		Date:                 r.Date.In(time.UTC),
		PropertiesConceptsID: r.PropertiesConceptsID,
		TransactionType:      models.TransactionType(r.TransactionType),
		Period:               r.Period,
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	return t
}

type Transaction struct {
	ID                   int64           `json:"id"`
	Date                 civil.Date      `json:"date"`
	PropertiesConceptsID int64           `json:"properties_concepts_id"`
	TransactionType      string          `json:"transaction_type"`
	Period               string          `json:"period"`
	Amount               decimal.Decimal `json:"amount"`
}

func NewTransactionFromModel(t *models.Transaction) Transaction {
	return Transaction{
		ID:                   t.ID,
		Date:                 civil.DateOf(t.Date),
		PropertiesConceptsID: t.PropertiesConceptsID,
		TransactionType:      string(t.TransactionType),
		Period:               t.Period,
		Amount:               t.Amount,
	}
}
