package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
)

// realEstateCreditRepository is a REAL_ESTATE-scoped view over the credits
// table.
type realEstateCreditRepository struct {
	db *sqlx.DB
}

func NewRealEstateCreditRepository(db *sqlx.DB) RealEstateCreditRepository {
	return &realEstateCreditRepository{db: db}
}

func (r *realEstateCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'REAL_ESTATE' ORDER BY id`
	return selectCredits(ctx, r.db, query)
}

func (r *realEstateCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'REAL_ESTATE' AND client_id = $1 ORDER BY id`
	return selectCredits(ctx, r.db, query, clientID)
}

func (r *realEstateCreditRepository) FindByPropertyType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'REAL_ESTATE' AND property_type = $1 ORDER BY id`
	return selectCredits(ctx, r.db, query, string(propertyType))
}

func (r *realEstateCreditRepository) FindByStatusAndPropertyType(ctx context.Context, status domain.CreditStatus, propertyType domain.PropertyType) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE credit_type = 'REAL_ESTATE' AND status = $1 AND property_type = $2 ORDER BY id`
	return selectCredits(ctx, r.db, query, string(status), string(propertyType))
}

func (r *realEstateCreditRepository) CountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (int64, error) {
	query := `SELECT COUNT(*) FROM credits WHERE credit_type = 'REAL_ESTATE' AND property_type = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(propertyType)); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *realEstateCreditRepository) AverageAmountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (decimal.NullDecimal, error) {
	query := `SELECT AVG(amount) FROM credits WHERE credit_type = 'REAL_ESTATE' AND property_type = $1`

	var avg decimal.NullDecimal
	if err := r.db.GetContext(ctx, &avg, query, string(propertyType)); err != nil {
		return decimal.NullDecimal{}, err
	}

	return avg, nil
}

func (r *realEstateCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	credit.Type = domain.CreditTypeRealEstate
	return insertCredit(ctx, r.db, credit)
}
