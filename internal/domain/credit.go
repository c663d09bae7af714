package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditStatus is the lifecycle status of a credit. Values match the wire
// representation used by the persistence layer.
type CreditStatus string

const (
	CreditStatusPending  CreditStatus = "EN_COURS"
	CreditStatusAccepted CreditStatus = "ACCEPTE"
	CreditStatusRejected CreditStatus = "REJETE"
)

// Valid reports whether s is a known credit status.
func (s CreditStatus) Valid() bool {
	switch s {
	case CreditStatusPending, CreditStatusAccepted, CreditStatusRejected:
		return true
	}
	return false
}

// CreditType discriminates the concrete credit subtype.
type CreditType string

const (
	CreditTypePersonal   CreditType = "PERSONAL"
	CreditTypeRealEstate CreditType = "REAL_ESTATE"
	CreditTypeBusiness   CreditType = "BUSINESS"
)

// Valid reports whether t is a known credit type.
func (t CreditType) Valid() bool {
	switch t {
	case CreditTypePersonal, CreditTypeRealEstate, CreditTypeBusiness:
		return true
	}
	return false
}

// PropertyType is the kind of property backing a real-estate credit.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "APPARTEMENT"
	PropertyTypeHouse      PropertyType = "MAISON"
	PropertyTypeCommercial PropertyType = "LOCAL_COMMERCIAL"
)

// Valid reports whether p is a known property type.
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial:
		return true
	}
	return false
}

// Credit is the shared representation of every credit subtype. Exactly one of
// the subtype payloads is set, selected by Type. A credit belongs to exactly
// one client and owns its repayments.
type Credit struct {
	ID             int64
	RequestDate    time.Time
	Status         CreditStatus
	AcceptanceDate *time.Time
	Amount         decimal.Decimal
	DurationMonths int
	InterestRate   decimal.Decimal
	ClientID       int64
	Repayments     []*Repayment

	Type       CreditType
	Personal   *PersonalCreditInfo
	RealEstate *RealEstateCreditInfo
	Business   *BusinessCreditInfo
}

// PersonalCreditInfo carries the personal-credit specific fields.
type PersonalCreditInfo struct {
	Motif string
}

// RealEstateCreditInfo carries the real-estate-credit specific fields.
type RealEstateCreditInfo struct {
	PropertyType PropertyType
}

// BusinessCreditInfo carries the business-credit specific fields.
type BusinessCreditInfo struct {
	Motif       string
	CompanyName string
}
