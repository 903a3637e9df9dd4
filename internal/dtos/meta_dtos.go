package dtos

import "github.com/shopspring/decimal"

func init() {
	// Amounts and valuations travel as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
