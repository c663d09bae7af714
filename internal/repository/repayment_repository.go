package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
)

const repaymentColumns = `id, date, amount, type, credit_id`

type repaymentRepository struct {
	db *sqlx.DB
}

func NewRepaymentRepository(db *sqlx.DB) RepaymentRepository {
	return &repaymentRepository{db: db}
}

func (r *repaymentRepository) FindAll(ctx context.Context) ([]*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments ORDER BY id`
	return r.selectRepayments(ctx, query)
}

func (r *repaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments WHERE id = $1`

	var repayment domain.Repayment
	if err := r.db.GetContext(ctx, &repayment, query, id); err != nil {
		return nil, err
	}

	return &repayment, nil
}

func (r *repaymentRepository) FindByCreditID(ctx context.Context, creditID int64) ([]*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments WHERE credit_id = $1 ORDER BY id`
	return r.selectRepayments(ctx, query, creditID)
}

func (r *repaymentRepository) FindByType(ctx context.Context, repaymentType domain.RepaymentType) ([]*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments WHERE type = $1 ORDER BY id`
	return r.selectRepayments(ctx, query, string(repaymentType))
}

func (r *repaymentRepository) FindByCreditIDAndType(ctx context.Context, creditID int64, repaymentType domain.RepaymentType) ([]*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments WHERE credit_id = $1 AND type = $2 ORDER BY id`
	return r.selectRepayments(ctx, query, creditID, string(repaymentType))
}

func (r *repaymentRepository) FindByDateBetween(ctx context.Context, from, to time.Time) ([]*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments WHERE date BETWEEN $1 AND $2 ORDER BY id`
	return r.selectRepayments(ctx, query, from, to)
}

func (r *repaymentRepository) FindByDateAfter(ctx context.Context, date time.Time) ([]*domain.Repayment, error) {
	query := `SELECT ` + repaymentColumns + ` FROM repayments WHERE date > $1 ORDER BY id`
	return r.selectRepayments(ctx, query, date)
}

func (r *repaymentRepository) CountByType(ctx context.Context, repaymentType domain.RepaymentType) (int64, error) {
	query := `SELECT COUNT(*) FROM repayments WHERE type = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(repaymentType)); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repaymentRepository) SumAmountByCreditID(ctx context.Context, creditID int64) (decimal.NullDecimal, error) {
	query := `SELECT SUM(amount) FROM repayments WHERE credit_id = $1`

	var sum decimal.NullDecimal
	if err := r.db.GetContext(ctx, &sum, query, creditID); err != nil {
		return decimal.NullDecimal{}, err
	}

	return sum, nil
}

func (r *repaymentRepository) Create(ctx context.Context, repayment *domain.Repayment) error {
	query := `INSERT INTO repayments (date, amount, type, credit_id) VALUES ($1, $2, $3, $4) RETURNING id`

	return r.db.QueryRowxContext(ctx, query,
		repayment.Date,
		repayment.Amount,
		string(repayment.Type),
		repayment.CreditID,
	).Scan(&repayment.ID)
}

func (r *repaymentRepository) Update(ctx context.Context, repayment *domain.Repayment) error {
	query := `UPDATE repayments SET date = $2, amount = $3, type = $4, credit_id = $5 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		repayment.ID,
		repayment.Date,
		repayment.Amount,
		string(repayment.Type),
		repayment.CreditID,
	)

	return err
}

func (r *repaymentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM repayments WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repaymentRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM repayments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repaymentRepository) selectRepayments(ctx context.Context, query string, args ...interface{}) ([]*domain.Repayment, error) {
	var repayments []*domain.Repayment
	if err := r.db.SelectContext(ctx, &repayments, query, args...); err != nil {
		return nil, err
	}

	return repayments, nil
}
