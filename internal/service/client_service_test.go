package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
	apperrors "github.com/lendcore/credit-engine/pkg/errors"
	"github.com/lendcore/credit-engine/tests/mocks"
)

func newClientService() (*ClientService, *mocks.MockClientRepository, *mocks.MockCreditRepository) {
	clientRepo := &mocks.MockClientRepository{}
	creditRepo := &mocks.MockCreditRepository{}
	return NewClientService(clientRepo, creditRepo), clientRepo, creditRepo
}

func TestCreateClient_Success(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Name == "Alice Martin" && c.Email == "alice@example.com"
	})).Return(nil)

	record, err := service.CreateClient(context.Background(), &dto.Client{
		Name:  "Alice Martin",
		Email: "alice@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice Martin", record.Name)
	clientRepo.AssertExpectations(t)
}

func TestCreateClient_InvalidEmail(t *testing.T) {
	service, clientRepo, _ := newClientService()

	record, err := service.CreateClient(context.Background(), &dto.Client{
		Name:  "Alice Martin",
		Email: "not-an-email",
	})

	assert.Nil(t, record)
	assert.True(t, apperrors.IsValidation(err))
	clientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetClientByID_Absent(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	record, err := service.GetClientByID(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetClientByEmail_Absent(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, sql.ErrNoRows)

	record, err := service.GetClientByEmail(context.Background(), "ghost@example.com")

	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestSearchClientsByName(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("SearchByName", mock.Anything, "mar").Return([]*domain.Client{
		{ID: 1, Name: "Alice Martin", Email: "alice@example.com"},
		{ID: 2, Name: "Paul Marchand", Email: "paul@example.com"},
	}, nil)

	records, err := service.SearchClientsByName(context.Background(), "mar")

	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestUpdateClient_NotFound(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, sql.ErrNoRows)

	record, err := service.UpdateClient(context.Background(), 99, &dto.Client{
		Name:  "Ghost",
		Email: "ghost@example.com",
	})

	assert.Nil(t, record)
	assert.True(t, apperrors.IsNotFound(err))
	clientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteClient_Success(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("ExistsByID", mock.Anything, int64(7)).Return(true, nil)
	clientRepo.On("DeleteByID", mock.Anything, int64(7)).Return(nil)

	err := service.DeleteClient(context.Background(), 7)

	assert.NoError(t, err)
	clientRepo.AssertExpectations(t)
}

func TestDeleteClient_NotFound(t *testing.T) {
	service, clientRepo, _ := newClientService()

	clientRepo.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil)

	err := service.DeleteClient(context.Background(), 99)

	assert.True(t, apperrors.IsNotFound(err))
	clientRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestGetClientCredits_MissingClient(t *testing.T) {
	service, clientRepo, creditRepo := newClientService()

	clientRepo.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil)

	records, err := service.GetClientCredits(context.Background(), 99)

	assert.Nil(t, records)
	assert.True(t, apperrors.IsNotFound(err))
	creditRepo.AssertNotCalled(t, "FindByClientID", mock.Anything, mock.Anything)
}

func TestTotalCreditAmount_SumsAllSubtypes(t *testing.T) {
	service, _, creditRepo := newClientService()

	// 10000 personal + 200000 real estate + 50000 business
	creditRepo.On("SumAmountByClientID", mock.Anything, int64(7)).
		Return(decimal.NewNullDecimal(decimal.NewFromInt(260000)), nil)

	sum, err := service.TotalCreditAmount(context.Background(), 7)

	assert.NoError(t, err)
	assert.True(t, sum.Valid)
	assert.True(t, sum.Decimal.Equal(decimal.NewFromInt(260000)))
}

func TestTotalCreditAmount_NoCredits(t *testing.T) {
	service, _, creditRepo := newClientService()

	creditRepo.On("SumAmountByClientID", mock.Anything, int64(8)).
		Return(decimal.NullDecimal{}, nil)

	sum, err := service.TotalCreditAmount(context.Background(), 8)

	assert.NoError(t, err)
	assert.False(t, sum.Valid)
}
