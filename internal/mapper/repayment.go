package mapper

import (
	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
)

// RepaymentToDTO maps a repayment entity to its transfer record. The owning
// credit is carried as an id only.
func RepaymentToDTO(r *domain.Repayment) *dto.Repayment {
	if r == nil {
		return nil
	}

	return &dto.Repayment{
		ID:       r.ID,
		Date:     r.Date,
		Amount:   r.Amount,
		Type:     string(r.Type),
		CreditID: r.CreditID,
	}
}

// RepaymentFromDTO maps a repayment transfer record back to an entity. The
// credit reference stays an id; validating it is up to the service layer.
func RepaymentFromDTO(d *dto.Repayment) *domain.Repayment {
	if d == nil {
		return nil
	}

	return &domain.Repayment{
		ID:       d.ID,
		Date:     d.Date,
		Amount:   d.Amount,
		Type:     domain.RepaymentType(d.Type),
		CreditID: d.CreditID,
	}
}
