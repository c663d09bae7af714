// Package dto holds the transfer records exchanged across the service
// boundary. Records are flat and acyclic: object references are carried as
// identifiers and owned collections as identifier lists, never as nested
// records.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is the transfer record for a client.
type Client struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	CreditIDs []int64 `json:"credit_ids"`
}

// Credit is the transfer record shared by all credit subtypes. CreditType
// discriminates the concrete subtype; the subtype-specific fields are the
// union of all subtype columns and only the ones matching CreditType are set.
type Credit struct {
	ID             int64           `json:"id"`
	RequestDate    time.Time       `json:"request_date"`
	Status         string          `json:"status"`
	AcceptanceDate *time.Time      `json:"acceptance_date,omitempty"`
	Amount         decimal.Decimal `json:"amount" validate:"required,decimal_gt=0"`
	DurationMonths int             `json:"duration_months" validate:"required,gt=0"`
	InterestRate   decimal.Decimal `json:"interest_rate" validate:"decimal_gte=0"`
	ClientID       int64           `json:"client_id" validate:"required,gt=0"`
	RepaymentIDs   []int64         `json:"repayment_ids"`

	CreditType string `json:"credit_type"`

	// Subtype fields, selected by CreditType.
	Motif        *string `json:"motif,omitempty"`
	PropertyType *string `json:"property_type,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
}

// Repayment is the transfer record for a repayment.
type Repayment struct {
	ID       int64           `json:"id"`
	Date     time.Time       `json:"date" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"required,decimal_gt=0"`
	Type     string          `json:"type" validate:"required"`
	CreditID int64           `json:"credit_id" validate:"required,gt=0"`
}
