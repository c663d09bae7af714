package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
	"github.com/lendcore/credit-engine/internal/mapper"
	"github.com/lendcore/credit-engine/internal/repository"
	apperrors "github.com/lendcore/credit-engine/pkg/errors"
	"github.com/lendcore/credit-engine/pkg/validation"
)

// RepaymentService orchestrates repayment reads and writes. Every write
// validates the owning credit reference before touching the store.
type RepaymentService struct {
	repaymentRepo repository.RepaymentRepository
	creditRepo    repository.CreditRepository
	validate      *validator.Validate
}

func NewRepaymentService(
	repaymentRepo repository.RepaymentRepository,
	creditRepo repository.CreditRepository,
) *RepaymentService {
	return &RepaymentService{
		repaymentRepo: repaymentRepo,
		creditRepo:    creditRepo,
		validate:      validation.New(),
	}
}

// GetAllRepayments returns every repayment as a transfer record
func (s *RepaymentService) GetAllRepayments(ctx context.Context) ([]*dto.Repayment, error) {
	repayments, err := s.repaymentRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return repaymentsToDTOs(repayments), nil
}

// GetRepaymentByID returns the repayment with the given id, or nil when no
// such repayment exists
func (s *RepaymentService) GetRepaymentByID(ctx context.Context, id int64) (*dto.Repayment, error) {
	repayment, err := s.repaymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.RepaymentToDTO(repayment), nil
}

// GetRepaymentsByCreditID returns the repayments made against a credit
func (s *RepaymentService) GetRepaymentsByCreditID(ctx context.Context, creditID int64) ([]*dto.Repayment, error) {
	repayments, err := s.repaymentRepo.FindByCreditID(ctx, creditID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return repaymentsToDTOs(repayments), nil
}

// GetRepaymentsByType returns repayments of the given type
func (s *RepaymentService) GetRepaymentsByType(ctx context.Context, repaymentType domain.RepaymentType) ([]*dto.Repayment, error) {
	if !repaymentType.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown repayment type: " + string(repaymentType))
	}

	repayments, err := s.repaymentRepo.FindByType(ctx, repaymentType)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return repaymentsToDTOs(repayments), nil
}

// GetRepaymentsByCreditIDAndType returns a credit's repayments of one type
func (s *RepaymentService) GetRepaymentsByCreditIDAndType(ctx context.Context, creditID int64, repaymentType domain.RepaymentType) ([]*dto.Repayment, error) {
	if !repaymentType.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown repayment type: " + string(repaymentType))
	}

	repayments, err := s.repaymentRepo.FindByCreditIDAndType(ctx, creditID, repaymentType)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return repaymentsToDTOs(repayments), nil
}

// GetRepaymentsByDateRange returns repayments dated inside [from, to]
func (s *RepaymentService) GetRepaymentsByDateRange(ctx context.Context, from, to time.Time) ([]*dto.Repayment, error) {
	repayments, err := s.repaymentRepo.FindByDateBetween(ctx, from, to)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return repaymentsToDTOs(repayments), nil
}

// GetRepaymentsAfterDate returns repayments dated after the given date
func (s *RepaymentService) GetRepaymentsAfterDate(ctx context.Context, date time.Time) ([]*dto.Repayment, error) {
	repayments, err := s.repaymentRepo.FindByDateAfter(ctx, date)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return repaymentsToDTOs(repayments), nil
}

// CreateRepayment persists a new repayment. The owning credit must exist
// before anything is written; a dangling credit id is an invalid reference,
// not a constraint violation.
func (s *RepaymentService) CreateRepayment(ctx context.Context, record *dto.Repayment) (*dto.Repayment, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, apperrors.WrapValidationFailed(err)
	}
	if !domain.RepaymentType(record.Type).Valid() {
		return nil, apperrors.WrapValidationMessage("unknown repayment type: " + record.Type)
	}

	exists, err := s.creditRepo.ExistsByID(ctx, record.CreditID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return nil, apperrors.WrapInvalidCreditReference(record.CreditID)
	}

	repayment := mapper.RepaymentFromDTO(record)
	repayment.ID = 0

	if err := s.repaymentRepo.Create(ctx, repayment); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.RepaymentToDTO(repayment), nil
}

// UpdateRepayment overwrites the repayment's scalar fields. A changed credit
// reference is re-resolved exactly as on create.
func (s *RepaymentService) UpdateRepayment(ctx context.Context, id int64, record *dto.Repayment) (*dto.Repayment, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, apperrors.WrapValidationFailed(err)
	}
	if !domain.RepaymentType(record.Type).Valid() {
		return nil, apperrors.WrapValidationMessage("unknown repayment type: " + record.Type)
	}

	existing, err := s.repaymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.WrapRepaymentNotFound(id)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	existing.Date = record.Date
	existing.Amount = record.Amount
	existing.Type = domain.RepaymentType(record.Type)

	if record.CreditID != 0 && record.CreditID != existing.CreditID {
		exists, err := s.creditRepo.ExistsByID(ctx, record.CreditID)
		if err != nil {
			return nil, apperrors.WrapDatabaseError(err)
		}
		if !exists {
			return nil, apperrors.WrapInvalidCreditReference(record.CreditID)
		}
		existing.CreditID = record.CreditID
	}

	if err := s.repaymentRepo.Update(ctx, existing); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.RepaymentToDTO(existing), nil
}

// DeleteRepayment removes a repayment
func (s *RepaymentService) DeleteRepayment(ctx context.Context, id int64) error {
	exists, err := s.repaymentRepo.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return apperrors.WrapRepaymentNotFound(id)
	}

	if err := s.repaymentRepo.DeleteByID(ctx, id); err != nil {
		return apperrors.WrapDatabaseError(err)
	}

	return nil
}

// TotalRepaymentAmountByCredit totals the repayments made against a credit;
// the result is invalid, not zero, when there are none
func (s *RepaymentService) TotalRepaymentAmountByCredit(ctx context.Context, creditID int64) (decimal.NullDecimal, error) {
	sum, err := s.repaymentRepo.SumAmountByCreditID(ctx, creditID)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.WrapDatabaseError(err)
	}

	return sum, nil
}

// CountRepaymentsByType counts repayments of the given type
func (s *RepaymentService) CountRepaymentsByType(ctx context.Context, repaymentType domain.RepaymentType) (int64, error) {
	if !repaymentType.Valid() {
		return 0, apperrors.WrapValidationMessage("unknown repayment type: " + string(repaymentType))
	}

	count, err := s.repaymentRepo.CountByType(ctx, repaymentType)
	if err != nil {
		return 0, apperrors.WrapDatabaseError(err)
	}

	return count, nil
}

func repaymentsToDTOs(repayments []*domain.Repayment) []*dto.Repayment {
	records := make([]*dto.Repayment, 0, len(repayments))
	for _, repayment := range repayments {
		records = append(records, mapper.RepaymentToDTO(repayment))
	}
	return records
}
