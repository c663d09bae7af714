package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/lendcore/credit-engine/internal/domain"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SearchByName(ctx context.Context, name string) ([]*domain.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Client), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreditRepository struct {
	mock.Mock
}

func (m *MockCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByID(ctx context.Context, id int64) (*domain.Credit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByStatus(ctx context.Context, status domain.CreditStatus) ([]*domain.Credit, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByRequestDateBetween(ctx context.Context, from, to time.Time) ([]*domain.Credit, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByAmountBetween(ctx context.Context, min, max decimal.Decimal) ([]*domain.Credit, error) {
	args := m.Called(ctx, min, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) FindByAcceptanceDateAfter(ctx context.Context, date time.Time) ([]*domain.Credit, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockCreditRepository) CountByStatus(ctx context.Context, status domain.CreditStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCreditRepository) SumAmountByClientID(ctx context.Context, clientID int64) (decimal.NullDecimal, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

func (m *MockCreditRepository) Update(ctx context.Context, credit *domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

func (m *MockCreditRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCreditRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPersonalCreditRepository struct {
	mock.Mock
}

func (m *MockPersonalCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockPersonalCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockPersonalCreditRepository) SearchByMotif(ctx context.Context, motif string) ([]*domain.Credit, error) {
	args := m.Called(ctx, motif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockPersonalCreditRepository) FindByStatusAndMotif(ctx context.Context, status domain.CreditStatus, motif string) ([]*domain.Credit, error) {
	args := m.Called(ctx, status, motif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockPersonalCreditRepository) AverageAmount(ctx context.Context) (decimal.NullDecimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockPersonalCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

type MockRealEstateCreditRepository struct {
	mock.Mock
}

func (m *MockRealEstateCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockRealEstateCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockRealEstateCreditRepository) FindByPropertyType(ctx context.Context, propertyType domain.PropertyType) ([]*domain.Credit, error) {
	args := m.Called(ctx, propertyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockRealEstateCreditRepository) FindByStatusAndPropertyType(ctx context.Context, status domain.CreditStatus, propertyType domain.PropertyType) ([]*domain.Credit, error) {
	args := m.Called(ctx, status, propertyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockRealEstateCreditRepository) CountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (int64, error) {
	args := m.Called(ctx, propertyType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRealEstateCreditRepository) AverageAmountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (decimal.NullDecimal, error) {
	args := m.Called(ctx, propertyType)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockRealEstateCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

type MockBusinessCreditRepository struct {
	mock.Mock
}

func (m *MockBusinessCreditRepository) FindAll(ctx context.Context) ([]*domain.Credit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockBusinessCreditRepository) FindByClientID(ctx context.Context, clientID int64) ([]*domain.Credit, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockBusinessCreditRepository) SearchByMotif(ctx context.Context, motif string) ([]*domain.Credit, error) {
	args := m.Called(ctx, motif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockBusinessCreditRepository) SearchByCompanyName(ctx context.Context, companyName string) ([]*domain.Credit, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockBusinessCreditRepository) FindByStatusAndCompanyName(ctx context.Context, status domain.CreditStatus, companyName string) ([]*domain.Credit, error) {
	args := m.Called(ctx, status, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Credit), args.Error(1)
}

func (m *MockBusinessCreditRepository) AverageAmount(ctx context.Context) (decimal.NullDecimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockBusinessCreditRepository) Create(ctx context.Context, credit *domain.Credit) error {
	args := m.Called(ctx, credit)
	return args.Error(0)
}

type MockRepaymentRepository struct {
	mock.Mock
}

func (m *MockRepaymentRepository) FindAll(ctx context.Context) ([]*domain.Repayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Repayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) FindByCreditID(ctx context.Context, creditID int64) ([]*domain.Repayment, error) {
	args := m.Called(ctx, creditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) FindByType(ctx context.Context, repaymentType domain.RepaymentType) ([]*domain.Repayment, error) {
	args := m.Called(ctx, repaymentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) FindByCreditIDAndType(ctx context.Context, creditID int64, repaymentType domain.RepaymentType) ([]*domain.Repayment, error) {
	args := m.Called(ctx, creditID, repaymentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) FindByDateBetween(ctx context.Context, from, to time.Time) ([]*domain.Repayment, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) FindByDateAfter(ctx context.Context, date time.Time) ([]*domain.Repayment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Repayment), args.Error(1)
}

func (m *MockRepaymentRepository) CountByType(ctx context.Context, repaymentType domain.RepaymentType) (int64, error) {
	args := m.Called(ctx, repaymentType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepaymentRepository) SumAmountByCreditID(ctx context.Context, creditID int64) (decimal.NullDecimal, error) {
	args := m.Called(ctx, creditID)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

func (m *MockRepaymentRepository) Create(ctx context.Context, repayment *domain.Repayment) error {
	args := m.Called(ctx, repayment)
	return args.Error(0)
}

func (m *MockRepaymentRepository) Update(ctx context.Context, repayment *domain.Repayment) error {
	args := m.Called(ctx, repayment)
	return args.Error(0)
}

func (m *MockRepaymentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepaymentRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
