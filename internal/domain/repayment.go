package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepaymentType distinguishes scheduled installments from early repayments.
type RepaymentType string

const (
	RepaymentTypeInstallment RepaymentType = "MENSUALITE"
	RepaymentTypeEarly       RepaymentType = "REMBOURSEMENT_ANTICIPE"
)

// Valid reports whether t is a known repayment type.
func (t RepaymentType) Valid() bool {
	switch t {
	case RepaymentTypeInstallment, RepaymentTypeEarly:
		return true
	}
	return false
}

// Repayment is a payment made against a credit. It cannot outlive the credit
// it belongs to.
type Repayment struct {
	ID       int64           `db:"id"`
	Date     time.Time       `db:"date"`
	Amount   decimal.Decimal `db:"amount"`
	Type     RepaymentType   `db:"type"`
	CreditID int64           `db:"credit_id"`
}
