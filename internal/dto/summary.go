package dto

import "github.com/shopspring/decimal"

// Aggregate result shapes rendered by the boundary. Absent aggregates (no
// matching rows) are rendered as zero; the absent/zero distinction exists
// only below the boundary.

type ClientCreditTotal struct {
	ClientID int64           `json:"client_id"`
	Total    decimal.Decimal `json:"total"`
}

type CreditRepaymentTotal struct {
	CreditID int64           `json:"credit_id"`
	Total    decimal.Decimal `json:"total"`
}

type CreditAverage struct {
	CreditType   string          `json:"credit_type"`
	PropertyType string          `json:"property_type,omitempty"`
	Average      decimal.Decimal `json:"average"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type PropertyTypeCount struct {
	PropertyType string `json:"property_type"`
	Count        int64  `json:"count"`
}

type RepaymentTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}
