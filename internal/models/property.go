package models

import "github.com/shopspring/decimal"

type Property struct {
	ID        int64           `json:"id"`
	Location  string          `json:"location"`
	Area      *int32          `json:"area,omitempty"`
	Valuation decimal.Decimal `json:"valuation"`
	Details   *string         `json:"details,omitempty"`
}
