package mapper

import (
	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
)

// creditBaseToDTO maps the fields shared by every credit subtype. The
// discriminator and subtype fields are stamped by the subtype mappers
// wrapping this result.
func creditBaseToDTO(c *domain.Credit) *dto.Credit {
	if c == nil {
		return nil
	}

	d := &dto.Credit{
		ID:             c.ID,
		RequestDate:    c.RequestDate,
		Status:         string(c.Status),
		AcceptanceDate: c.AcceptanceDate,
		Amount:         c.Amount,
		DurationMonths: c.DurationMonths,
		InterestRate:   c.InterestRate,
		ClientID:       c.ClientID,
	}

	if c.Repayments != nil {
		d.RepaymentIDs = make([]int64, 0, len(c.Repayments))
		for _, repayment := range c.Repayments {
			d.RepaymentIDs = append(d.RepaymentIDs, repayment.ID)
		}
	}

	return d
}

// creditBaseFromDTO rebuilds the shared credit fields. The client reference
// is carried as an id only and the repayment collection is left to the
// service layer.
func creditBaseFromDTO(d *dto.Credit) *domain.Credit {
	if d == nil {
		return nil
	}

	return &domain.Credit{
		ID:             d.ID,
		RequestDate:    d.RequestDate,
		Status:         domain.CreditStatus(d.Status),
		AcceptanceDate: d.AcceptanceDate,
		Amount:         d.Amount,
		DurationMonths: d.DurationMonths,
		InterestRate:   d.InterestRate,
		ClientID:       d.ClientID,
	}
}

// PersonalCreditToDTO maps a personal credit, stamping the PERSONAL
// discriminator and the motif field.
func PersonalCreditToDTO(c *domain.Credit) *dto.Credit {
	d := creditBaseToDTO(c)
	if d == nil {
		return nil
	}

	d.CreditType = string(domain.CreditTypePersonal)
	if c.Personal != nil {
		motif := c.Personal.Motif
		d.Motif = &motif
	}

	return d
}

// PersonalCreditFromDTO rebuilds a personal credit entity.
func PersonalCreditFromDTO(d *dto.Credit) *domain.Credit {
	c := creditBaseFromDTO(d)
	if c == nil {
		return nil
	}

	c.Type = domain.CreditTypePersonal
	c.Personal = &domain.PersonalCreditInfo{}
	if d.Motif != nil {
		c.Personal.Motif = *d.Motif
	}

	return c
}

// RealEstateCreditToDTO maps a real-estate credit, stamping the REAL_ESTATE
// discriminator and the property type.
func RealEstateCreditToDTO(c *domain.Credit) *dto.Credit {
	d := creditBaseToDTO(c)
	if d == nil {
		return nil
	}

	d.CreditType = string(domain.CreditTypeRealEstate)
	if c.RealEstate != nil {
		propertyType := string(c.RealEstate.PropertyType)
		d.PropertyType = &propertyType
	}

	return d
}

// RealEstateCreditFromDTO rebuilds a real-estate credit entity.
func RealEstateCreditFromDTO(d *dto.Credit) *domain.Credit {
	c := creditBaseFromDTO(d)
	if c == nil {
		return nil
	}

	c.Type = domain.CreditTypeRealEstate
	c.RealEstate = &domain.RealEstateCreditInfo{}
	if d.PropertyType != nil {
		c.RealEstate.PropertyType = domain.PropertyType(*d.PropertyType)
	}

	return c
}

// BusinessCreditToDTO maps a business credit, stamping the BUSINESS
// discriminator, the motif and the company name.
func BusinessCreditToDTO(c *domain.Credit) *dto.Credit {
	d := creditBaseToDTO(c)
	if d == nil {
		return nil
	}

	d.CreditType = string(domain.CreditTypeBusiness)
	if c.Business != nil {
		motif := c.Business.Motif
		companyName := c.Business.CompanyName
		d.Motif = &motif
		d.CompanyName = &companyName
	}

	return d
}

// BusinessCreditFromDTO rebuilds a business credit entity.
func BusinessCreditFromDTO(d *dto.Credit) *domain.Credit {
	c := creditBaseFromDTO(d)
	if c == nil {
		return nil
	}

	c.Type = domain.CreditTypeBusiness
	c.Business = &domain.BusinessCreditInfo{}
	if d.Motif != nil {
		c.Business.Motif = *d.Motif
	}
	if d.CompanyName != nil {
		c.Business.CompanyName = *d.CompanyName
	}

	return c
}

// CreditToDTO maps any credit by dispatching on its discriminator, so
// heterogeneous credit lists map each element with its concrete subtype
// fields populated.
func CreditToDTO(c *domain.Credit) *dto.Credit {
	if c == nil {
		return nil
	}

	switch c.Type {
	case domain.CreditTypePersonal:
		return PersonalCreditToDTO(c)
	case domain.CreditTypeRealEstate:
		return RealEstateCreditToDTO(c)
	case domain.CreditTypeBusiness:
		return BusinessCreditToDTO(c)
	}

	d := creditBaseToDTO(c)
	d.CreditType = string(c.Type)
	return d
}

// CreditFromDTO rebuilds any credit by dispatching on the record's
// discriminator.
func CreditFromDTO(d *dto.Credit) *domain.Credit {
	if d == nil {
		return nil
	}

	switch domain.CreditType(d.CreditType) {
	case domain.CreditTypePersonal:
		return PersonalCreditFromDTO(d)
	case domain.CreditTypeRealEstate:
		return RealEstateCreditFromDTO(d)
	case domain.CreditTypeBusiness:
		return BusinessCreditFromDTO(d)
	}

	c := creditBaseFromDTO(d)
	c.Type = domain.CreditType(d.CreditType)
	return c
}
