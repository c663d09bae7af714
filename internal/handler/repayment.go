package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lendcore/credit-engine/internal/domain"
	"github.com/lendcore/credit-engine/internal/dto"
	"github.com/lendcore/credit-engine/internal/service"
	"github.com/lendcore/credit-engine/pkg/response"
)

type RepaymentHandler struct {
	service *service.RepaymentService
}

func NewRepaymentHandler(service *service.RepaymentService) *RepaymentHandler {
	return &RepaymentHandler{service: service}
}

func (h *RepaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	repayments, err := h.service.GetAllRepayments(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, repayments)
}

func (h *RepaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	repayment, err := h.service.GetRepaymentByID(r.Context(), id)
	if err != nil {
		response.ServiceError(w, err)
		return
	}
	if repayment == nil {
		response.NotFound(w, "repayment not found")
		return
	}

	response.Success(w, repayment)
}

func (h *RepaymentHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	repaymentType := domain.RepaymentType(mux.Vars(r)["type"])

	repayments, err := h.service.GetRepaymentsByType(r.Context(), repaymentType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, repayments)
}

func (h *RepaymentHandler) GetByCreditIDAndType(w http.ResponseWriter, r *http.Request) {
	creditID, ok := pathID(w, r, "creditId")
	if !ok {
		return
	}
	repaymentType := domain.RepaymentType(mux.Vars(r)["type"])

	repayments, err := h.service.GetRepaymentsByCreditIDAndType(r.Context(), creditID, repaymentType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, repayments)
}

func (h *RepaymentHandler) GetByDateRange(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRange(w, r)
	if !ok {
		return
	}

	repayments, err := h.service.GetRepaymentsByDateRange(r.Context(), from, to)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, repayments)
}

func (h *RepaymentHandler) GetAfterDate(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "invalid date", err)
		return
	}

	repayments, err := h.service.GetRepaymentsAfterDate(r.Context(), date)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, repayments)
}

func (h *RepaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record dto.Repayment
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	created, err := h.service.CreateRepayment(r.Context(), &record)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Created(w, created)
}

func (h *RepaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var record dto.Repayment
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	updated, err := h.service.UpdateRepayment(r.Context(), id, &record)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, updated)
}

func (h *RepaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteRepayment(r.Context(), id); err != nil {
		response.ServiceError(w, err)
		return
	}

	response.NoContent(w)
}

// GetTotalByCredit renders the total amount repaid against a credit. An
// absent total (no repayments) renders as 0.
func (h *RepaymentHandler) GetTotalByCredit(w http.ResponseWriter, r *http.Request) {
	creditID, ok := pathID(w, r, "creditId")
	if !ok {
		return
	}

	sum, err := h.service.TotalRepaymentAmountByCredit(r.Context(), creditID)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.CreditRepaymentTotal{CreditID: creditID, Total: nullToZero(sum)})
}

func (h *RepaymentHandler) CountByType(w http.ResponseWriter, r *http.Request) {
	repaymentType := domain.RepaymentType(mux.Vars(r)["type"])

	count, err := h.service.CountRepaymentsByType(r.Context(), repaymentType)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, dto.RepaymentTypeCount{Type: string(repaymentType), Count: count})
}
