package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
)

const creditColumns = `id, request_date, status, acceptance_date, amount, duration_months, interest_rate, client_id, credit_type, motif, property_type, company_name`

// creditRow is the wide-table representation of a credit: shared base columns
// plus nullable subtype columns discriminated by credit_type.
type creditRow struct {
	ID             int64           `db:"id"`
	RequestDate    time.Time       `db:"request_date"`
	Status         string          `db:"status"`
	AcceptanceDate *time.Time      `db:"acceptance_date"`
	Amount         decimal.Decimal `db:"amount"`
	DurationMonths int             `db:"duration_months"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	ClientID       int64           `db:"client_id"`
	CreditType     string          `db:"credit_type"`
	Motif          sql.NullString  `db:"motif"`
	PropertyType   sql.NullString  `db:"property_type"`
	CompanyName    sql.NullString  `db:"company_name"`
}

func (r *creditRow) toDomain() *domain.Credit {
	credit := &domain.Credit{
		ID:             r.ID,
		RequestDate:    r.RequestDate,
		Status:         domain.CreditStatus(r.Status),
		AcceptanceDate: r.AcceptanceDate,
		Amount:         r.Amount,
		DurationMonths: r.DurationMonths,
		InterestRate:   r.InterestRate,
		ClientID:       r.ClientID,
		Type:           domain.CreditType(r.CreditType),
	}

	switch credit.Type {
	case domain.CreditTypePersonal:
		credit.Personal = &domain.PersonalCreditInfo{Motif: r.Motif.String}
	case domain.CreditTypeRealEstate:
		credit.RealEstate = &domain.RealEstateCreditInfo{PropertyType: domain.PropertyType(r.PropertyType.String)}
	case domain.CreditTypeBusiness:
		credit.Business = &domain.BusinessCreditInfo{
			Motif:       r.Motif.String,
			CompanyName: r.CompanyName.String,
		}
	}

	return credit
}

type creditRepository struct {
	db *sqlx.DB
}

func NewCreditRepository(db *sqlx.DB) CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits ORDER BY id`
	return r.selectCredits(ctx, query)
}

func (r *creditRepository) FindByID(ctx context.Context, id int64) (*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE id = $1`

	var row creditRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}

	credit := row.toDomain()
	if err := attachRepaymentIDs(ctx, r.db, []*domain.Credit{credit}); err != nil {
		return nil, err
	}

	return credit, nil
}

func (r *creditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE client_id = $1 ORDER BY id`
	return r.selectCredits(ctx, query, clientID)
}

func (r *creditRepository) FindByStatus(ctx context.Context, status domain.CreditStatus) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE status = $1 ORDER BY id`
	return r.selectCredits(ctx, query, string(status))
}

func (r *creditRepository) FindByRequestDateBetween(ctx context.Context, from, to time.Time) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE request_date BETWEEN $1 AND $2 ORDER BY id`
	return r.selectCredits(ctx, query, from, to)
}

func (r *creditRepository) FindByAmountBetween(ctx context.Context, min, max decimal.Decimal) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE amount BETWEEN $1 AND $2 ORDER BY id`
	return r.selectCredits(ctx, query, min, max)
}

func (r *creditRepository) FindByAcceptanceDateAfter(ctx context.Context, date time.Time) ([]*domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE acceptance_date > $1 ORDER BY id`
	return r.selectCredits(ctx, query, date)
}

func (r *creditRepository) CountByStatus(ctx context.Context, status domain.CreditStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM credits WHERE status = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, string(status)); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *creditRepository) SumAmountByClientID(ctx context.Context, clientID int64) (decimal.NullDecimal, error) {
	query := `SELECT SUM(amount) FROM credits WHERE client_id = $1`

	var sum decimal.NullDecimal
	if err := r.db.GetContext(ctx, &sum, query, clientID); err != nil {
		return decimal.NullDecimal{}, err
	}

	return sum, nil
}

func (r *creditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	return insertCredit(ctx, r.db, credit)
}

func (r *creditRepository) Update(ctx context.Context, credit *domain.Credit) error {
	query := `
		UPDATE credits
		SET request_date = $2, status = $3, acceptance_date = $4, amount = $5,
		    duration_months = $6, interest_rate = $7, client_id = $8
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		credit.ID,
		credit.RequestDate,
		string(credit.Status),
		credit.AcceptanceDate,
		credit.Amount,
		credit.DurationMonths,
		credit.InterestRate,
		credit.ClientID,
	)

	return err
}

func (r *creditRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM credits WHERE id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}

	return exists, nil
}

// DeleteByID removes the credit and its repayments in one transaction so a
// concurrent read never observes a repayment without its credit.
func (r *creditRepository) DeleteByID(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM repayments WHERE credit_id = $1`, id); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM credits WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *creditRepository) selectCredits(ctx context.Context, query string, args ...interface{}) ([]*domain.Credit, error) {
	return selectCredits(ctx, r.db, query, args...)
}

// selectCredits runs a credit query and hydrates the owned repayment id
// stubs, so the mapping layer can emit id lists without loading full rows.
func selectCredits(ctx context.Context, db *sqlx.DB, query string, args ...interface{}) ([]*domain.Credit, error) {
	var rows []*creditRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	credits := make([]*domain.Credit, 0, len(rows))
	for _, row := range rows {
		credits = append(credits, row.toDomain())
	}

	if err := attachRepaymentIDs(ctx, db, credits); err != nil {
		return nil, err
	}

	return credits, nil
}

func attachRepaymentIDs(ctx context.Context, db *sqlx.DB, credits []*domain.Credit) error {
	if len(credits) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Credit, len(credits))
	ids := make([]int64, 0, len(credits))
	for _, credit := range credits {
		byID[credit.ID] = credit
		ids = append(ids, credit.ID)
	}

	query := `SELECT id, credit_id FROM repayments WHERE credit_id = ANY($1) ORDER BY id`

	var rows []struct {
		ID       int64 `db:"id"`
		CreditID int64 `db:"credit_id"`
	}
	if err := db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return err
	}

	for _, row := range rows {
		if credit, ok := byID[row.CreditID]; ok {
			credit.Repayments = append(credit.Repayments, &domain.Repayment{ID: row.ID, CreditID: row.CreditID})
		}
	}

	return nil
}

// insertCredit writes base and subtype columns as a single row, keeping the
// subtype create atomic.
func insertCredit(ctx context.Context, db *sqlx.DB, credit *domain.Credit) error {
	query := `
		INSERT INTO credits (request_date, status, acceptance_date, amount, duration_months,
		                     interest_rate, client_id, credit_type, motif, property_type, company_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var motif, propertyType, companyName sql.NullString
	switch credit.Type {
	case domain.CreditTypePersonal:
		if credit.Personal != nil {
			motif = sql.NullString{String: credit.Personal.Motif, Valid: true}
		}
	case domain.CreditTypeRealEstate:
		if credit.RealEstate != nil {
			propertyType = sql.NullString{String: string(credit.RealEstate.PropertyType), Valid: true}
		}
	case domain.CreditTypeBusiness:
		if credit.Business != nil {
			motif = sql.NullString{String: credit.Business.Motif, Valid: true}
			companyName = sql.NullString{String: credit.Business.CompanyName, Valid: true}
		}
	}

	return db.QueryRowxContext(ctx, query,
		credit.RequestDate,
		string(credit.Status),
		credit.AcceptanceDate,
		credit.Amount,
		credit.DurationMonths,
		credit.InterestRate,
		credit.ClientID,
		string(credit.Type),
		motif,
		propertyType,
		companyName,
	).Scan(&credit.ID)
}
