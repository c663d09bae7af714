package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
	apperrors "github.com/lendcore/credit-engine/pkg/errors"
	"github.com/lendcore/credit-engine/tests/mocks"
)

func newRepaymentService() (*RepaymentService, *mocks.MockRepaymentRepository, *mocks.MockCreditRepository) {
	repaymentRepo := &mocks.MockRepaymentRepository{}
	creditRepo := &mocks.MockCreditRepository{}
	return NewRepaymentService(repaymentRepo, creditRepo), repaymentRepo, creditRepo
}

func validRepaymentRecord() *dto.Repayment {
	return &dto.Repayment{
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(500),
		Type:     "MENSUALITE",
		CreditID: 21,
	}
}

func TestCreateRepayment_Success(t *testing.T) {
	service, repaymentRepo, creditRepo := newRepaymentService()

	creditRepo.On("ExistsByID", mock.Anything, int64(21)).Return(true, nil)
	repaymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Repayment) bool {
		return r.CreditID == 21 && r.Type == domain.RepaymentTypeInstallment
	})).Return(nil)

	created, err := service.CreateRepayment(context.Background(), validRepaymentRecord())

	assert.NoError(t, err)
	assert.Equal(t, "MENSUALITE", created.Type)
	assert.Equal(t, int64(21), created.CreditID)
	repaymentRepo.AssertExpectations(t)
}

func TestCreateRepayment_MissingCredit(t *testing.T) {
	service, repaymentRepo, creditRepo := newRepaymentService()

	creditRepo.On("ExistsByID", mock.Anything, int64(21)).Return(false, nil)

	created, err := service.CreateRepayment(context.Background(), validRepaymentRecord())

	assert.Nil(t, created)
	assert.True(t, apperrors.IsInvalidReference(err))
	repaymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRepayment_UnknownType(t *testing.T) {
	service, repaymentRepo, creditRepo := newRepaymentService()

	record := validRepaymentRecord()
	record.Type = "HEBDOMADAIRE"

	created, err := service.CreateRepayment(context.Background(), record)

	assert.Nil(t, created)
	assert.True(t, apperrors.IsValidation(err))
	creditRepo.AssertNotCalled(t, "ExistsByID", mock.Anything, mock.Anything)
	repaymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetRepaymentByID_Absent(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	record, err := service.GetRepaymentByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetRepaymentsByType_UnknownType(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	records, err := service.GetRepaymentsByType(context.Background(), "HEBDOMADAIRE")

	assert.Nil(t, records)
	assert.True(t, apperrors.IsValidation(err))
	repaymentRepo.AssertNotCalled(t, "FindByType", mock.Anything, mock.Anything)
}

func TestUpdateRepayment_NotFound(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	record, err := service.UpdateRepayment(context.Background(), 99, validRepaymentRecord())

	assert.Nil(t, record)
	assert.True(t, apperrors.IsNotFound(err))
	repaymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRepayment_ReassignedCreditMustExist(t *testing.T) {
	service, repaymentRepo, creditRepo := newRepaymentService()

	existing := &domain.Repayment{
		ID:       31,
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(500),
		Type:     domain.RepaymentTypeInstallment,
		CreditID: 21,
	}

	record := validRepaymentRecord()
	record.CreditID = 22

	repaymentRepo.On("FindByID", mock.Anything, int64(31)).Return(existing, nil)
	creditRepo.On("ExistsByID", mock.Anything, int64(22)).Return(false, nil)

	updated, err := service.UpdateRepayment(context.Background(), 31, record)

	assert.Nil(t, updated)
	assert.True(t, apperrors.IsInvalidReference(err))
	repaymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteRepayment_Success(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("ExistsByID", mock.Anything, int64(31)).Return(true, nil)
	repaymentRepo.On("DeleteByID", mock.Anything, int64(31)).Return(nil)

	err := service.DeleteRepayment(context.Background(), 31)

	assert.NoError(t, err)
	repaymentRepo.AssertExpectations(t)
}

func TestDeleteRepayment_NotFound(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil)

	err := service.DeleteRepayment(context.Background(), 99)

	assert.True(t, apperrors.IsNotFound(err))
	repaymentRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestTotalRepaymentAmountByCredit(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("SumAmountByCreditID", mock.Anything, int64(21)).
		Return(decimal.NewNullDecimal(decimal.NewFromInt(1500)), nil)

	sum, err := service.TotalRepaymentAmountByCredit(context.Background(), 21)

	assert.NoError(t, err)
	assert.True(t, sum.Valid)
	assert.True(t, sum.Decimal.Equal(decimal.NewFromInt(1500)))
}

func TestTotalRepaymentAmountByCredit_NoRepayments(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("SumAmountByCreditID", mock.Anything, int64(22)).
		Return(decimal.NullDecimal{}, nil)

	sum, err := service.TotalRepaymentAmountByCredit(context.Background(), 22)

	assert.NoError(t, err)
	assert.False(t, sum.Valid)
}

func TestCountRepaymentsByType(t *testing.T) {
	service, repaymentRepo, _ := newRepaymentService()

	repaymentRepo.On("CountByType", mock.Anything, domain.RepaymentTypeEarly).Return(int64(2), nil)

	count, err := service.CountRepaymentsByType(context.Background(), domain.RepaymentTypeEarly)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
