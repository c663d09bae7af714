package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
	"github.com/lendcore/credit-engine/internal/service"
	"github.com/lendcore/credit-engine/pkg/response"
)

const dateLayout = "2006-01-02"

type CreditHandler struct {
	service *service.CreditService
}

func NewCreditHandler(service *service.CreditService) *CreditHandler {
	return &CreditHandler{service: service}
}

func (h *CreditHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.GetAllCredits(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	credit, err := h.service.GetCreditByID(r.Context(), id)
	if err != nil {
		response.ServiceError(w, err)
		return
	}
	if credit == nil {
		response.NotFound(w, "credit not found")
		return
	}

	response.Success(w, credit)
}

func (h *CreditHandler) GetByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.CreditStatus(mux.Vars(r)["status"])

	credits, err := h.service.GetCreditsByStatus(r.Context(), status)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetByRequestDateRange(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}

	credits, err := h.service.GetCreditsByRequestDateRange(r.Context(), from, to)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetByAmountRange(w http.ResponseWriter, r *http.Request) {
	min, err := decimal.NewFromString(r.URL.Query().Get("min"))
	if err != nil {
		response.BadRequest(w, "invalid min amount", err)
		return
	}
	max, err := decimal.NewFromString(r.URL.Query().Get("max"))
	if err != nil {
		response.BadRequest(w, "invalid max amount", err)
		return
	}

	credits, err := h.service.GetCreditsByAmountRange(r.Context(), min, max)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetAcceptedAfter(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "invalid date", err)
		return
	}

	credits, err := h.service.GetCreditsAcceptedAfter(r.Context(), date)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

// CreatePersonal, CreateRealEstate and CreateBusiness are distinct endpoints
// so the router can steer each inbound shape to its subtype create.
func (h *CreditHandler) CreatePersonal(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.service.CreatePersonalCredit)
}

func (h *CreditHandler) CreateRealEstate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.service.CreateRealEstateCredit)
}

func (h *CreditHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.service.CreateBusinessCredit)
}

func (h *CreditHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var record dto.Credit
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	updated, err := h.service.UpdateCredit(r.Context(), id, &record)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, updated)
}

func (h *CreditHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCredit(r.Context(), id); err != nil {
		response.ServiceError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *CreditHandler) GetRepayments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	repayments, err := h.service.GetCreditRepayments(r.Context(), id)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, repayments)
}

func (h *CreditHandler) GetAllPersonal(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.GetAllPersonalCredits(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetAllRealEstate(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.GetAllRealEstateCredits(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetAllBusiness(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.GetAllBusinessCredits(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	credits, err := h.service.GetCreditsByClientID(r.Context(), clientID)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetPersonalByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	credits, err := h.service.GetPersonalCreditsByClient(r.Context(), clientID)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetRealEstateByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	credits, err := h.service.GetRealEstateCreditsByClient(r.Context(), clientID)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetBusinessByClient(w http.ResponseWriter, r *http.Request) {
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	credits, err := h.service.GetBusinessCreditsByClient(r.Context(), clientID)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) SearchPersonalByMotif(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.SearchPersonalCreditsByMotif(r.Context(), r.URL.Query().Get("motif"))
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) SearchRealEstateByPropertyType(w http.ResponseWriter, r *http.Request) {
	propertyType := domain.PropertyType(mux.Vars(r)["propertyType"])

	credits, err := h.service.SearchRealEstateCreditsByPropertyType(r.Context(), propertyType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) SearchBusinessByCompanyName(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.SearchBusinessCreditsByCompanyName(r.Context(), r.URL.Query().Get("company"))
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) SearchBusinessByMotif(w http.ResponseWriter, r *http.Request) {
	credits, err := h.service.SearchBusinessCreditsByMotif(r.Context(), r.URL.Query().Get("motif"))
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetPersonalByStatusAndMotif(w http.ResponseWriter, r *http.Request) {
	status := domain.CreditStatus(mux.Vars(r)["status"])

	credits, err := h.service.GetPersonalCreditsByStatusAndMotif(r.Context(), status, r.URL.Query().Get("motif"))
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetRealEstateByStatusAndPropertyType(w http.ResponseWriter, r *http.Request) {
	status := domain.CreditStatus(mux.Vars(r)["status"])
	propertyType := domain.PropertyType(r.URL.Query().Get("propertyType"))

	credits, err := h.service.GetRealEstateCreditsByStatusAndPropertyType(r.Context(), status, propertyType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) GetBusinessByStatusAndCompanyName(w http.ResponseWriter, r *http.Request) {
	status := domain.CreditStatus(mux.Vars(r)["status"])

	credits, err := h.service.GetBusinessCreditsByStatusAndCompanyName(r.Context(), status, r.URL.Query().Get("company"))
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

func (h *CreditHandler) CountByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.CreditStatus(mux.Vars(r)["status"])

	count, err := h.service.CountCreditsByStatus(r.Context(), status)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.StatusCount{Status: string(status), Count: count})
}

func (h *CreditHandler) CountRealEstateByPropertyType(w http.ResponseWriter, r *http.Request) {
	propertyType := domain.PropertyType(mux.Vars(r)["propertyType"])

	count, err := h.service.CountRealEstateCreditsByPropertyType(r.Context(), propertyType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.PropertyTypeCount{PropertyType: string(propertyType), Count: count})
}

func (h *CreditHandler) AveragePersonal(w http.ResponseWriter, r *http.Request) {
	avg, err := h.service.AveragePersonalCreditAmount(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.CreditAverage{
		CreditType: string(domain.CreditTypePersonal),
		Average:    nullToZero(avg),
	})
}

func (h *CreditHandler) AverageRealEstateByPropertyType(w http.ResponseWriter, r *http.Request) {
	propertyType := domain.PropertyType(mux.Vars(r)["propertyType"])

	avg, err := h.service.AverageRealEstateCreditAmountByPropertyType(r.Context(), propertyType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.CreditAverage{
		CreditType:   string(domain.CreditTypeRealEstate),
		PropertyType: string(propertyType),
		Average:      nullToZero(avg),
	})
}

func (h *CreditHandler) AverageBusiness(w http.ResponseWriter, r *http.Request) {
	avg, err := h.service.AverageBusinessCreditAmount(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.CreditAverage{
		CreditType: string(domain.CreditTypeBusiness),
		Average:    nullToZero(avg),
	})
}

func (h *CreditHandler) create(w http.ResponseWriter, r *http.Request, createFn func(ctx context.Context, record *dto.Credit) (*dto.Credit, error)) {
	var record dto.Credit
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	created, err := createFn(r.Context(), &record)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Created(w, created)
}

// dateRange parses the from/to query parameters as YYYY-MM-DD dates.
func dateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	from, err := time.Parse(dateLayout, r.URL.Query().Get("from"))
	if err != nil {
		response.BadRequest(w, "invalid from date", err)
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(dateLayout, r.URL.Query().Get("to"))
	if err != nil {
		response.BadRequest(w, "invalid to date", err)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func nullToZero(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}
