package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/config"
	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
	"github.com/lendcore/credit-engine/internal/mapper"
	"github.com/lendcore/credit-engine/internal/repository"
	apperrors "github.com/lendcore/credit-engine/pkg/errors"
	"github.com/lendcore/credit-engine/pkg/validation"
)

// CreditService orchestrates credit reads and writes across the base table
// and the three subtype views. Creates are routed to the subtype-specific
// repository; generic reads, updates and deletes operate on the shared base
// fields of every subtype.
type CreditService struct {
	creditRepo     repository.CreditRepository
	personalRepo   repository.PersonalCreditRepository
	realEstateRepo repository.RealEstateCreditRepository
	businessRepo   repository.BusinessCreditRepository
	clientRepo     repository.ClientRepository
	repaymentRepo  repository.RepaymentRepository
	policy         config.PolicyConfig
	validate       *validator.Validate
}

func NewCreditService(
	creditRepo repository.CreditRepository,
	personalRepo repository.PersonalCreditRepository,
	realEstateRepo repository.RealEstateCreditRepository,
	businessRepo repository.BusinessCreditRepository,
	clientRepo repository.ClientRepository,
	repaymentRepo repository.RepaymentRepository,
	policy config.PolicyConfig,
) *CreditService {
	return &CreditService{
		creditRepo:     creditRepo,
		personalRepo:   personalRepo,
		realEstateRepo: realEstateRepo,
		businessRepo:   businessRepo,
		clientRepo:     clientRepo,
		repaymentRepo:  repaymentRepo,
		policy:         policy,
		validate:       validation.New(),
	}
}

// GetAllCredits returns every credit, each mapped with its concrete subtype
// fields and discriminator
func (s *CreditService) GetAllCredits(ctx context.Context) ([]*dto.Credit, error) {
	credits, err := s.creditRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetCreditByID returns the credit with the given id, or nil when no such
// credit exists
func (s *CreditService) GetCreditByID(ctx context.Context, id int64) (*dto.Credit, error) {
	credit, err := s.creditRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.CreditToDTO(credit), nil
}

// GetCreditsByClientID returns a client's credits across all subtypes
func (s *CreditService) GetCreditsByClientID(ctx context.Context, clientID int64) ([]*dto.Credit, error) {
	credits, err := s.creditRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetPersonalCreditsByClient returns a client's personal credits
func (s *CreditService) GetPersonalCreditsByClient(ctx context.Context, clientID int64) ([]*dto.Credit, error) {
	credits, err := s.personalRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetRealEstateCreditsByClient returns a client's real-estate credits
func (s *CreditService) GetRealEstateCreditsByClient(ctx context.Context, clientID int64) ([]*dto.Credit, error) {
	credits, err := s.realEstateRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetBusinessCreditsByClient returns a client's business credits
func (s *CreditService) GetBusinessCreditsByClient(ctx context.Context, clientID int64) ([]*dto.Credit, error) {
	credits, err := s.businessRepo.FindByClientID(ctx, clientID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetCreditsByStatus returns credits in the given status
func (s *CreditService) GetCreditsByStatus(ctx context.Context, status domain.CreditStatus) ([]*dto.Credit, error) {
	if !status.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown credit status: " + string(status))
	}

	credits, err := s.creditRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetCreditsByRequestDateRange returns credits requested inside [from, to]
func (s *CreditService) GetCreditsByRequestDateRange(ctx context.Context, from, to time.Time) ([]*dto.Credit, error) {
	credits, err := s.creditRepo.FindByRequestDateBetween(ctx, from, to)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetCreditsByAmountRange returns credits with amount inside [min, max]
func (s *CreditService) GetCreditsByAmountRange(ctx context.Context, min, max decimal.Decimal) ([]*dto.Credit, error) {
	credits, err := s.creditRepo.FindByAmountBetween(ctx, min, max)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetCreditsAcceptedAfter returns credits whose acceptance date is after the
// given date
func (s *CreditService) GetCreditsAcceptedAfter(ctx context.Context, date time.Time) ([]*dto.Credit, error) {
	credits, err := s.creditRepo.FindByAcceptanceDateAfter(ctx, date)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// CreatePersonalCredit persists a new personal credit. The client reference
// is resolved before anything is written.
func (s *CreditService) CreatePersonalCredit(ctx context.Context, record *dto.Credit) (*dto.Credit, error) {
	if err := s.validateCreate(ctx, record); err != nil {
		return nil, err
	}
	if record.Motif == nil || *record.Motif == "" {
		return nil, apperrors.WrapValidationMessage("motif is required for a personal credit")
	}

	credit := mapper.PersonalCreditFromDTO(record)
	applyCreateDefaults(credit)

	if err := s.personalRepo.Create(ctx, credit); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.PersonalCreditToDTO(credit), nil
}

// CreateRealEstateCredit persists a new real-estate credit
func (s *CreditService) CreateRealEstateCredit(ctx context.Context, record *dto.Credit) (*dto.Credit, error) {
	if err := s.validateCreate(ctx, record); err != nil {
		return nil, err
	}
	if record.PropertyType == nil || !domain.PropertyType(*record.PropertyType).Valid() {
		return nil, apperrors.WrapValidationMessage("a valid property type is required for a real-estate credit")
	}

	credit := mapper.RealEstateCreditFromDTO(record)
	applyCreateDefaults(credit)

	if err := s.realEstateRepo.Create(ctx, credit); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.RealEstateCreditToDTO(credit), nil
}

// CreateBusinessCredit persists a new business credit
func (s *CreditService) CreateBusinessCredit(ctx context.Context, record *dto.Credit) (*dto.Credit, error) {
	if err := s.validateCreate(ctx, record); err != nil {
		return nil, err
	}
	if record.Motif == nil || *record.Motif == "" {
		return nil, apperrors.WrapValidationMessage("motif is required for a business credit")
	}
	if record.CompanyName == nil || *record.CompanyName == "" {
		return nil, apperrors.WrapValidationMessage("company name is required for a business credit")
	}

	credit := mapper.BusinessCreditFromDTO(record)
	applyCreateDefaults(credit)

	if err := s.businessRepo.Create(ctx, credit); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.BusinessCreditToDTO(credit), nil
}

// UpdateCredit overwrites the mutable base fields shared by every subtype.
// Subtype payloads are immutable after creation. A changed client reference
// is re-resolved and rejected when the new client does not exist.
func (s *CreditService) UpdateCredit(ctx context.Context, id int64, record *dto.Credit) (*dto.Credit, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, apperrors.WrapValidationFailed(err)
	}

	existing, err := s.creditRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.WrapCreditNotFound(id)
		}
		return nil, apperrors.WrapDatabaseError(err)
	}

	newStatus := domain.CreditStatus(record.Status)
	if record.Status != "" && !newStatus.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown credit status: " + record.Status)
	}
	if record.Status != "" && newStatus != existing.Status {
		if s.policy.EnforceStatusTransitions && existing.Status != domain.CreditStatusPending {
			return nil, apperrors.WrapValidationMessage(
				"status " + string(existing.Status) + " is terminal and cannot change")
		}
		if newStatus == domain.CreditStatusAccepted && record.AcceptanceDate == nil && existing.AcceptanceDate == nil {
			now := time.Now()
			existing.AcceptanceDate = &now
		}
		existing.Status = newStatus
	}

	// An omitted request date keeps the stored one; creates default it instead.
	if !record.RequestDate.IsZero() {
		existing.RequestDate = record.RequestDate
	}
	existing.Amount = record.Amount
	existing.DurationMonths = record.DurationMonths
	existing.InterestRate = record.InterestRate
	if record.AcceptanceDate != nil {
		existing.AcceptanceDate = record.AcceptanceDate
	}

	if record.ClientID != 0 && record.ClientID != existing.ClientID {
		exists, err := s.clientRepo.ExistsByID(ctx, record.ClientID)
		if err != nil {
			return nil, apperrors.WrapDatabaseError(err)
		}
		if !exists {
			return nil, apperrors.WrapInvalidClientReference(record.ClientID)
		}
		existing.ClientID = record.ClientID
	}

	if err := s.creditRepo.Update(ctx, existing); err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return mapper.CreditToDTO(existing), nil
}

// DeleteCredit removes a credit and every repayment made against it
func (s *CreditService) DeleteCredit(ctx context.Context, id int64) error {
	exists, err := s.creditRepo.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return apperrors.WrapCreditNotFound(id)
	}

	if err := s.creditRepo.DeleteByID(ctx, id); err != nil {
		return apperrors.WrapDatabaseError(err)
	}

	return nil
}

// GetCreditRepayments returns the repayments made against a credit. The
// credit must exist; its repayments may be empty.
func (s *CreditService) GetCreditRepayments(ctx context.Context, creditID int64) ([]*dto.Repayment, error) {
	exists, err := s.creditRepo.ExistsByID(ctx, creditID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return nil, apperrors.WrapCreditNotFound(creditID)
	}

	repayments, err := s.repaymentRepo.FindByCreditID(ctx, creditID)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	records := make([]*dto.Repayment, 0, len(repayments))
	for _, repayment := range repayments {
		records = append(records, mapper.RepaymentToDTO(repayment))
	}

	return records, nil
}

// GetAllPersonalCredits returns every personal credit
func (s *CreditService) GetAllPersonalCredits(ctx context.Context) ([]*dto.Credit, error) {
	credits, err := s.personalRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetAllRealEstateCredits returns every real-estate credit
func (s *CreditService) GetAllRealEstateCredits(ctx context.Context) ([]*dto.Credit, error) {
	credits, err := s.realEstateRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetAllBusinessCredits returns every business credit
func (s *CreditService) GetAllBusinessCredits(ctx context.Context) ([]*dto.Credit, error) {
	credits, err := s.businessRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// SearchPersonalCreditsByMotif returns personal credits whose motif contains
// the given string, case-insensitively
func (s *CreditService) SearchPersonalCreditsByMotif(ctx context.Context, motif string) ([]*dto.Credit, error) {
	credits, err := s.personalRepo.SearchByMotif(ctx, motif)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// SearchRealEstateCreditsByPropertyType returns real-estate credits backed by
// the given property type
func (s *CreditService) SearchRealEstateCreditsByPropertyType(ctx context.Context, propertyType domain.PropertyType) ([]*dto.Credit, error) {
	if !propertyType.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown property type: " + string(propertyType))
	}

	credits, err := s.realEstateRepo.FindByPropertyType(ctx, propertyType)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// SearchBusinessCreditsByCompanyName returns business credits whose company
// name contains the given string, case-insensitively
func (s *CreditService) SearchBusinessCreditsByCompanyName(ctx context.Context, companyName string) ([]*dto.Credit, error) {
	credits, err := s.businessRepo.SearchByCompanyName(ctx, companyName)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// SearchBusinessCreditsByMotif returns business credits whose motif contains
// the given string, case-insensitively
func (s *CreditService) SearchBusinessCreditsByMotif(ctx context.Context, motif string) ([]*dto.Credit, error) {
	credits, err := s.businessRepo.SearchByMotif(ctx, motif)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetPersonalCreditsByStatusAndMotif returns personal credits in the given
// status whose motif contains the given string
func (s *CreditService) GetPersonalCreditsByStatusAndMotif(ctx context.Context, status domain.CreditStatus, motif string) ([]*dto.Credit, error) {
	if !status.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown credit status: " + string(status))
	}

	credits, err := s.personalRepo.FindByStatusAndMotif(ctx, status, motif)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetRealEstateCreditsByStatusAndPropertyType returns real-estate credits in
// the given status backed by the given property type
func (s *CreditService) GetRealEstateCreditsByStatusAndPropertyType(ctx context.Context, status domain.CreditStatus, propertyType domain.PropertyType) ([]*dto.Credit, error) {
	if !status.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown credit status: " + string(status))
	}
	if !propertyType.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown property type: " + string(propertyType))
	}

	credits, err := s.realEstateRepo.FindByStatusAndPropertyType(ctx, status, propertyType)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// GetBusinessCreditsByStatusAndCompanyName returns business credits in the
// given status whose company name contains the given string
func (s *CreditService) GetBusinessCreditsByStatusAndCompanyName(ctx context.Context, status domain.CreditStatus, companyName string) ([]*dto.Credit, error) {
	if !status.Valid() {
		return nil, apperrors.WrapValidationMessage("unknown credit status: " + string(status))
	}

	credits, err := s.businessRepo.FindByStatusAndCompanyName(ctx, status, companyName)
	if err != nil {
		return nil, apperrors.WrapDatabaseError(err)
	}

	return creditsToDTOs(credits), nil
}

// CountCreditsByStatus counts credits in the given status
func (s *CreditService) CountCreditsByStatus(ctx context.Context, status domain.CreditStatus) (int64, error) {
	if !status.Valid() {
		return 0, apperrors.WrapValidationMessage("unknown credit status: " + string(status))
	}

	count, err := s.creditRepo.CountByStatus(ctx, status)
	if err != nil {
		return 0, apperrors.WrapDatabaseError(err)
	}

	return count, nil
}

// CountRealEstateCreditsByPropertyType counts real-estate credits backed by
// the given property type
func (s *CreditService) CountRealEstateCreditsByPropertyType(ctx context.Context, propertyType domain.PropertyType) (int64, error) {
	if !propertyType.Valid() {
		return 0, apperrors.WrapValidationMessage("unknown property type: " + string(propertyType))
	}

	count, err := s.realEstateRepo.CountByPropertyType(ctx, propertyType)
	if err != nil {
		return 0, apperrors.WrapDatabaseError(err)
	}

	return count, nil
}

// AveragePersonalCreditAmount averages all personal credit amounts; the
// result is invalid when there are none
func (s *CreditService) AveragePersonalCreditAmount(ctx context.Context) (decimal.NullDecimal, error) {
	avg, err := s.personalRepo.AverageAmount(ctx)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.WrapDatabaseError(err)
	}

	return avg, nil
}

// AverageRealEstateCreditAmountByPropertyType averages real-estate credit
// amounts for one property type; the result is invalid when there are none
func (s *CreditService) AverageRealEstateCreditAmountByPropertyType(ctx context.Context, propertyType domain.PropertyType) (decimal.NullDecimal, error) {
	if !propertyType.Valid() {
		return decimal.NullDecimal{}, apperrors.WrapValidationMessage("unknown property type: " + string(propertyType))
	}

	avg, err := s.realEstateRepo.AverageAmountByPropertyType(ctx, propertyType)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.WrapDatabaseError(err)
	}

	return avg, nil
}

// AverageBusinessCreditAmount averages all business credit amounts; the
// result is invalid when there are none
func (s *CreditService) AverageBusinessCreditAmount(ctx context.Context) (decimal.NullDecimal, error) {
	avg, err := s.businessRepo.AverageAmount(ctx)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.WrapDatabaseError(err)
	}

	return avg, nil
}

// TotalCreditAmountByClient totals a client's credit amounts across all
// subtypes; the result is invalid when the client has no credits
func (s *CreditService) TotalCreditAmountByClient(ctx context.Context, clientID int64) (decimal.NullDecimal, error) {
	sum, err := s.creditRepo.SumAmountByClientID(ctx, clientID)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.WrapDatabaseError(err)
	}

	return sum, nil
}

// validateCreate checks the shared base fields and resolves the client
// reference before any write happens.
func (s *CreditService) validateCreate(ctx context.Context, record *dto.Credit) error {
	if err := s.validate.Struct(record); err != nil {
		return apperrors.WrapValidationFailed(err)
	}

	if record.Status != "" && !domain.CreditStatus(record.Status).Valid() {
		return apperrors.WrapValidationMessage("unknown credit status: " + record.Status)
	}

	exists, err := s.clientRepo.ExistsByID(ctx, record.ClientID)
	if err != nil {
		return apperrors.WrapDatabaseError(err)
	}
	if !exists {
		return apperrors.WrapInvalidClientReference(record.ClientID)
	}

	return nil
}

// applyCreateDefaults fills the lifecycle defaults of a new credit: status
// starts pending and the request date defaults to now, unless supplied.
func applyCreateDefaults(credit *domain.Credit) {
	if credit.Status == "" {
		credit.Status = domain.CreditStatusPending
	}
	if credit.RequestDate.IsZero() {
		credit.RequestDate = time.Now()
	}
	// A brand-new credit has no identity and no repayments yet.
	credit.ID = 0
	credit.Repayments = nil
}

func creditsToDTOs(credits []*domain.Credit) []*dto.Credit {
	records := make([]*dto.Credit, 0, len(credits))
	for _, credit := range credits {
		records = append(records, mapper.CreditToDTO(credit))
	}
	return records
}
