package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
)

// ClientRepository defines the persistence contract for clients
type ClientRepository interface {
	// FindAll retrieves every client
	FindAll(ctx context.Context) ([]*domain.Client, error)

	// FindByID retrieves a client by id
	FindByID(ctx context.Context, id int64) (*domain.Client, error)

	// FindByEmail retrieves a client by email
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)

	// SearchByName retrieves clients whose name contains the given string,
	// case-insensitively
	SearchByName(ctx context.Context, name string) ([]*domain.Client, error)

	// Create persists a new client and assigns its id
	Create(ctx context.Context, client *domain.Client) error

	// Update overwrites the client's scalar columns
	Update(ctx context.Context, client *domain.Client) error

	// ExistsByID reports whether a client row exists
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID deletes a client and, child-first in one transaction, every
	// credit and repayment it owns
	DeleteByID(ctx context.Context, id int64) error
}

// CreditRepository defines the persistence contract shared by all credit
// subtypes
type CreditRepository interface {
	FindAll(ctx context.Context) ([]*domain.Credit, error)
	FindByID(ctx context.Context, id int64) (*domain.Credit, error)
	FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error)
	FindByStatus(ctx context.Context, status domain.CreditStatus) ([]*domain.Credit, error)
	FindByRequestDateBetween(ctx context.Context, from, to time.Time) ([]*domain.Credit, error)
	FindByAmountBetween(ctx context.Context, min, max decimal.Decimal) ([]*domain.Credit, error)
	FindByAcceptanceDateAfter(ctx context.Context, date time.Time) ([]*domain.Credit, error)

	// CountByStatus counts credits in the given status
	CountByStatus(ctx context.Context, status domain.CreditStatus) (int64, error)

	// SumAmountByClientID totals the credit amounts owned by a client. The
	// result is invalid (not zero) when the client has no credits.
	SumAmountByClientID(ctx context.Context, clientID int64) (decimal.NullDecimal, error)

	// Create persists a credit of any subtype as one row, base and subtype
	// columns together, and assigns its id
	Create(ctx context.Context, credit *domain.Credit) error

	// Update overwrites the credit's shared base columns
	Update(ctx context.Context, credit *domain.Credit) error

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID deletes a credit and its repayments child-first in one
	// transaction
	DeleteByID(ctx context.Context, id int64) error
}

// PersonalCreditRepository sees only PERSONAL credit rows
type PersonalCreditRepository interface {
	FindAll(ctx context.Context) ([]*domain.Credit, error)
	FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error)
	SearchByMotif(ctx context.Context, motif string) ([]*domain.Credit, error)
	FindByStatusAndMotif(ctx context.Context, status domain.CreditStatus, motif string) ([]*domain.Credit, error)

	// AverageAmount averages the amounts of all personal credits; invalid
	// when there are none
	AverageAmount(ctx context.Context) (decimal.NullDecimal, error)

	Create(ctx context.Context, credit *domain.Credit) error
}

// RealEstateCreditRepository sees only REAL_ESTATE credit rows
type RealEstateCreditRepository interface {
	FindAll(ctx context.Context) ([]*domain.Credit, error)
	FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error)
	FindByPropertyType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Credit, error)
	FindByStatusAndPropertyType(ctx context.Context, status domain.CreditStatus, propertyType domain.PropertyType) ([]*domain.Credit, error)
	CountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (int64, error)
	AverageAmountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (decimal.NullDecimal, error)
	Create(ctx context.Context, credit *domain.Credit) error
}

// BusinessCreditRepository sees only BUSINESS credit rows
type BusinessCreditRepository interface {
	FindAll(ctx context.Context) ([]*domain.Credit, error)
	FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error)
	SearchByMotif(ctx context.Context, motif string) ([]*domain.Credit, error)
	SearchByCompanyName(ctx context.Context, companyName string) ([]*domain.Credit, error)
	FindByStatusAndCompanyName(ctx context.Context, status domain.CreditStatus, companyName string) ([]*domain.Credit, error)
	AverageAmount(ctx context.Context) (decimal.NullDecimal, error)
	Create(ctx context.Context, credit *domain.Credit) error
}

// RepaymentRepository defines the persistence contract for repayments
type RepaymentRepository interface {
	FindAll(ctx context.Context) ([]*domain.Repayment, error)
	FindByID(ctx context.Context, id int64) (*domain.Repayment, error)
	FindByCreditID(ctx context.Context, creditID int64) ([]*domain.Repayment, error)
	FindByType(ctx context.Context, repaymentType domain.RepaymentType) ([]*domain.Repayment, error)
	FindByCreditIDAndType(ctx context.Context, creditID int64, repaymentType domain.RepaymentType) ([]*domain.Repayment, error)
	FindByDateBetween(ctx context.Context, from, to time.Time) ([]*domain.Repayment, error)
	FindByDateAfter(ctx context.Context, date time.Time) ([]*domain.Repayment, error)

	// CountByType counts repayments of the given type
	CountByType(ctx context.Context, repaymentType domain.RepaymentType) (int64, error)

	// SumAmountByCreditID totals the repayments made against a credit; the
	// result is invalid (not zero) when there are none
	SumAmountByCreditID(ctx context.Context, creditID int64) (decimal.NullDecimal, error)

	Create(ctx context.Context, repayment *domain.Repayment) error
	Update(ctx context.Context, repayment *domain.Repayment) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
