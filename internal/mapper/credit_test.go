package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
)

func baseCredit(creditType domain.CreditType) *domain.Credit {
	return &domain.Credit{
		ID:             21,
		RequestDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         domain.CreditStatusPending,
		Amount:         decimal.NewFromInt(10000),
		DurationMonths: 24,
		InterestRate:   decimal.NewFromFloat(3.5),
		ClientID:       7,
		Type:           creditType,
		Repayments: []*domain.Repayment{
			{ID: 31, CreditID: 21},
			{ID: 32, CreditID: 21},
		},
	}
}

func TestPersonalCreditToDTO(t *testing.T) {
	credit := baseCredit(domain.CreditTypePersonal)
	credit.Personal = &domain.PersonalCreditInfo{Motif: "travaux"}

	record := PersonalCreditToDTO(credit)

	assert.Equal(t, "PERSONAL", record.CreditType)
	assert.Equal(t, []int64{31, 32}, record.RepaymentIDs)
	if assert.NotNil(t, record.Motif) {
		assert.Equal(t, "travaux", *record.Motif)
	}
	assert.Nil(t, record.PropertyType)
	assert.Nil(t, record.CompanyName)
}

func TestPersonalCreditRoundTrip(t *testing.T) {
	credit := baseCredit(domain.CreditTypePersonal)
	credit.Personal = &domain.PersonalCreditInfo{Motif: "voiture"}

	rebuilt := PersonalCreditFromDTO(PersonalCreditToDTO(credit))

	assert.Equal(t, credit.ID, rebuilt.ID)
	assert.Equal(t, credit.Status, rebuilt.Status)
	assert.True(t, credit.Amount.Equal(rebuilt.Amount))
	assert.Equal(t, credit.ClientID, rebuilt.ClientID)
	assert.Equal(t, domain.CreditTypePersonal, rebuilt.Type)
	if assert.NotNil(t, rebuilt.Personal) {
		assert.Equal(t, "voiture", rebuilt.Personal.Motif)
	}
}

func TestRealEstateCreditToDTO(t *testing.T) {
	credit := baseCredit(domain.CreditTypeRealEstate)
	credit.RealEstate = &domain.RealEstateCreditInfo{PropertyType: domain.PropertyTypeApartment}

	record := RealEstateCreditToDTO(credit)

	assert.Equal(t, "REAL_ESTATE", record.CreditType)
	if assert.NotNil(t, record.PropertyType) {
		assert.Equal(t, "APPARTEMENT", *record.PropertyType)
	}
	assert.Nil(t, record.Motif)
	assert.Nil(t, record.CompanyName)
}

func TestRealEstateCreditRoundTrip(t *testing.T) {
	credit := baseCredit(domain.CreditTypeRealEstate)
	credit.RealEstate = &domain.RealEstateCreditInfo{PropertyType: domain.PropertyTypeHouse}

	rebuilt := RealEstateCreditFromDTO(RealEstateCreditToDTO(credit))

	assert.Equal(t, domain.CreditTypeRealEstate, rebuilt.Type)
	if assert.NotNil(t, rebuilt.RealEstate) {
		assert.Equal(t, domain.PropertyTypeHouse, rebuilt.RealEstate.PropertyType)
	}
}

func TestBusinessCreditRoundTrip(t *testing.T) {
	credit := baseCredit(domain.CreditTypeBusiness)
	credit.Business = &domain.BusinessCreditInfo{Motif: "expansion", CompanyName: "Acme SARL"}

	record := BusinessCreditToDTO(credit)

	assert.Equal(t, "BUSINESS", record.CreditType)
	if assert.NotNil(t, record.Motif) {
		assert.Equal(t, "expansion", *record.Motif)
	}
	if assert.NotNil(t, record.CompanyName) {
		assert.Equal(t, "Acme SARL", *record.CompanyName)
	}

	rebuilt := BusinessCreditFromDTO(record)
	if assert.NotNil(t, rebuilt.Business) {
		assert.Equal(t, "expansion", rebuilt.Business.Motif)
		assert.Equal(t, "Acme SARL", rebuilt.Business.CompanyName)
	}
}

func TestCreditToDTO_DispatchesOnSubtype(t *testing.T) {
	personal := baseCredit(domain.CreditTypePersonal)
	personal.Personal = &domain.PersonalCreditInfo{Motif: "travaux"}
	realEstate := baseCredit(domain.CreditTypeRealEstate)
	realEstate.RealEstate = &domain.RealEstateCreditInfo{PropertyType: domain.PropertyTypeCommercial}
	business := baseCredit(domain.CreditTypeBusiness)
	business.Business = &domain.BusinessCreditInfo{Motif: "tresorerie", CompanyName: "Dupont SA"}

	records := []*dto.Credit{
		CreditToDTO(personal),
		CreditToDTO(realEstate),
		CreditToDTO(business),
	}

	assert.Equal(t, "PERSONAL", records[0].CreditType)
	assert.NotNil(t, records[0].Motif)

	assert.Equal(t, "REAL_ESTATE", records[1].CreditType)
	assert.NotNil(t, records[1].PropertyType)
	assert.Nil(t, records[1].Motif)

	assert.Equal(t, "BUSINESS", records[2].CreditType)
	assert.NotNil(t, records[2].Motif)
	assert.NotNil(t, records[2].CompanyName)
}

func TestCreditFromDTO_DispatchesOnDiscriminator(t *testing.T) {
	motif := "travaux"
	record := &dto.Credit{
		ID:             21,
		RequestDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:         "EN_COURS",
		Amount:         decimal.NewFromInt(10000),
		DurationMonths: 24,
		InterestRate:   decimal.NewFromFloat(3.5),
		ClientID:       7,
		CreditType:     "PERSONAL",
		Motif:          &motif,
	}

	credit := CreditFromDTO(record)

	assert.Equal(t, domain.CreditTypePersonal, credit.Type)
	if assert.NotNil(t, credit.Personal) {
		assert.Equal(t, "travaux", credit.Personal.Motif)
	}
	assert.Nil(t, credit.RealEstate)
	assert.Nil(t, credit.Business)
}

func TestCreditToDTO_NilInput(t *testing.T) {
	assert.Nil(t, CreditToDTO(nil))
	assert.Nil(t, CreditFromDTO(nil))
}
