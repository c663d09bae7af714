package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
)

// personalCreditRepository is a PERSONAL-scoped view over the credits table.
type personalCreditRepository struct {
	db *sqlx.DB
}

func NewPersonalCreditRepository(db *sqlx.DB) PersonalCreditRepository {
	return &personalCreditRepository{db: db}
}

func (r *personalCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'PERSONAL' ORDER BY id`
	return selectCredits(ctx, r.db, query)
}

func (r *personalCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'PERSONAL' AND client_id = $1 ORDER BY id`
	return selectCredits(ctx, r.db, query, clientID)
}

func (r *personalCreditRepository) SearchByMotif(ctx context.Context, motif string) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'PERSONAL' AND motif ILIKE '%' || $1 || '%' ORDER BY id`
	return selectCredits(ctx, r.db, query, motif)
}

func (r *personalCreditRepository) FindByStatusAndMotif(ctx context.Context, status domain.CreditStatus, motif string) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'PERSONAL' AND status = $1 AND motif ILIKE '%' || $2 || '%' ORDER BY id`
	return selectCredits(ctx, r.db, query, string(status), motif)
}

func (r *personalCreditRepository) AverageAmount(ctx context.Context) (decimal.NullDecimal, error) {
	query := `SELECT AVG(amount) FROM credits WHERE credit_type = 'PERSONAL'`

	var avg decimal.NullDecimal
	if err := r.db.GetContext(ctx, &avg, query); err != nil {
		return decimal.NullDecimal{}, err
	}

	return avg, nil
}

func (r *personalCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	credit.Type = domain.CreditTypePersonal
	return insertCredit(ctx, r.db, credit)
}
