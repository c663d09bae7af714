// Package mapper translates between domain entities and transfer records.
// Every mapping is a pure, stateless transformation: nil maps to nil, owned
// collections flatten to identifier lists, and reverse mappings rebuild only
// identifier back-references. Resolving those references against real rows is
// the service layer's job.
package mapper

import (
	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
)

// ClientToDTO maps a client entity to its transfer record. Owned credits
// become a list of credit ids.
func ClientToDTO(c *domain.Client) *dto.Client {
	if c == nil {
		return nil
	}

	d := &dto.Client{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}

	if c.Credits != nil {
		d.CreditIDs = make([]int64, 0, len(c.Credits))
		for _, credit := range c.Credits {
			d.CreditIDs = append(d.CreditIDs, credit.ID)
		}
	}

	return d
}

// ClientFromDTO maps a client transfer record back to an entity. The credit
// collection is not rebuilt here; ownership is managed by the service layer.
func ClientFromDTO(d *dto.Client) *domain.Client {
	if d == nil {
		return nil
	}

	return &domain.Client{
		ID:    d.ID,
		Name:  d.Name,
		Email: d.Email,
	}
}
