package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/dto"
	"github.com/lendcore/credit-engine/internal/mapper"
	"github.com/lendcore/credit-engine/internal/repository"
	apperrors "github.com/lendcore/credit-engine/pkg/errors"
	"github.com/lendcore/credit-engine/pkg/validation"
)

// ClientService orchestrates client reads and writes. Deleting a client
// cascades to its credits and their repayments.
type ClientService struct {
	clientRepo repository.ClientRepository
	creditRepo repository.CreditRepository
	validate   *validator.Validate
}

func NewClientService(
	clientRepo repository.ClientRepository,
	creditRepo repository.CreditRepository,
) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		creditRepo: creditRepo,
		validate:   validation.New(),
	}
}

// GetAllClients returns every client as a transfer record
func (s *ClientService) GetAllClients(ctx context.Context) ([]*dto.Client, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	records := make([]*dto.Client, 0, len(clients))
	for _, client := range clients {
		records = append(records, mapper.ClientToDTO(client))
	}

	return records, nil
}

// GetClientByID returns the client with the given id, or nil when no such
// client exists. Absence on a read is not an error.
func (s *ClientService) GetClientByID(ctx context.Context, id int64) (*dto.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.ClientToDTO(client), nil
}

// GetClientByEmail returns the client with the given email, or nil when no
// such client exists.
func (s *ClientService) GetClientByEmail(ctx context.Context, email string) (*dto.Client, error) {
	client, err := s.clientRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.ClientToDTO(client), nil
}

// SearchClientsByName returns clients whose name contains the given string,
// case-insensitively. No match yields an empty list.
func (s *ClientService) SearchClientsByName(ctx context.Context, name string) ([]*dto.Client, error) {
	clients, err := s.clientRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	records := make([]*dto.Client, 0, len(clients))
	for _, client := range clients {
		records = append(records, mapper.ClientToDTO(client))
	}

	return records, nil
}

// CreateClient persists a new client and returns its record with the
// assigned id
func (s *ClientService) CreateClient(ctx context.Context, record *dto.Client) (*dto.Client, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, apperrors.WrapValidationFailed(err)
	}

	client := mapper.ClientFromDTO(record)
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.ClientToDTO(client), nil
}

// UpdateClient overwrites the client's mutable scalar fields. The owned
// credit collection is never touched by an update.
func (s *ClientService) UpdateClient(ctx context.Context, id int64, record *dto.Client) (*dto.Client, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, apperrors.WrapValidationFailed(err)
	}

	existing, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.WrapClientNotFound(id)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	existing.Name = record.Name
	existing.Email = record.Email

	if err := s.clientRepo.Update(ctx, existing); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.ClientToDTO(existing), nil
}

// DeleteClient removes a client and, transitively, every credit and
// repayment it owns
func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	exists, err := s.clientRepo.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return apperrors.WrapClientNotFound(id)
	}

	if err := s.clientRepo.DeleteByID(ctx, id); err != nil {
		return apperrors.WrapDatabaseError(err)
	}

	return nil
}

// GetClientCredits returns the credits owned by a client. The client must
// exist; its credits may be empty.
func (s *ClientService) GetClientCredits(ctx context.Context, clientID int64) ([]*dto.Credit, error) {
	exists, err := s.clientRepo.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return nil, apperrors.WrapClientNotFound(clientID)
	}

	credits, err := s.creditRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	records := make([]*dto.Credit, 0, len(credits))
	for _, credit := range credits {
		records = append(records, mapper.CreditToDTO(credit))
	}

	return records, nil
}

// TotalCreditAmount totals the credit amounts owned by a client. The result
// is invalid, not zero, when the client has no credits; callers render that
// as 0.
func (s *ClientService) TotalCreditAmount(ctx context.Context, clientID int64) (decimal.NullDecimal, error) {
	sum, err := s.creditRepo.SumAmountByClientID(ctx, clientID)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.WrapDatabaseError(err)
	}

	return sum, nil
}
