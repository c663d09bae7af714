package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
)

// businessCreditRepository is a BUSINESS-scoped view over the credits table.
type businessCreditRepository struct {
	db *sqlx.DB
}

func NewBusinessCreditRepository(db *sqlx.DB) BusinessCreditRepository {
	return &businessCreditRepository{db: db}
}

func (r *businessCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'BUSINESS' ORDER BY id`
	return selectCredits(ctx, r.db, query)
}

func (r *businessCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'BUSINESS' AND client_id = $1 ORDER BY id`
	return selectCredits(ctx, r.db, query, clientID)
}

func (r *businessCreditRepository) SearchByMotif(ctx context.Context, motif string) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'BUSINESS' AND motif ILIKE '%' || $1 || '%' ORDER BY id`
	return selectCredits(ctx, r.db, query, motif)
}

func (r *businessCreditRepository) SearchByCompanyName(ctx context.Context, companyName string) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'BUSINESS' AND company_name ILIKE '%' || $1 || '%' ORDER BY id`
	return selectCredits(ctx, r.db, query, companyName)
}

func (r *businessCreditRepository) FindByStatusAndCompanyName(ctx context.Context, status domain.CreditStatus, companyName string) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'BUSINESS' AND status = $1 AND company_name ILIKE '%' || $2 || '%' ORDER BY id`
	return selectCredits(ctx, r.db, query, string(status), companyName)
}

func (r *businessCreditRepository) AverageAmount(ctx context.Context) (decimal.NullDecimal, error) {
	query := `SELECT AVG(amount) FROM credits WHERE credit_type = 'BUSINESS'`

	var avg decimal.NullDecimal
	if err := r.db.GetContext(ctx, &avg, query); err != nil {
		return decimal.NullDecimal{}, err
	}

	return avg, nil
}

func (r *businessCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	credit.Type = domain.CreditTypeBusiness
	return insertCredit(ctx, r.db, credit)
}
