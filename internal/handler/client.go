package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/lendcore/credit-engine/internal/dto"
	"github.com/lendcore/credit-engine/internal/service"
	"github.com/lendcore/credit-engine/pkg/response"
)

type ClientHandler struct {
	service *service.ClientService
}

func NewClientHandler(service *service.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.GetAllClients(r.Context())
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, clients)
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	client, err := h.service.GetClientByID(r.Context(), id)
	if err != nil {
		response.ServiceError(w, err)
		return
	}
	if client == nil {
		response.NotFound(w, "client not found")
		return
	}

	response.Success(w, client)
}

func (h *ClientHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	client, err := h.service.GetClientByEmail(r.Context(), email)
	if err != nil {
		response.ServiceError(w, err)
		return
	}
	if client == nil {
		response.NotFound(w, "client not found")
		return
	}

	response.Success(w, client)
}

func (h *ClientHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	clients, err := h.service.SearchClientsByName(r.Context(), name)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var record dto.Client
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	created, err := h.service.CreateClient(r.Context(), &record)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Created(w, created)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var record dto.Client
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		response.BadRequest(w, "invalid request body", err)
		return
	}

	updated, err := h.service.UpdateClient(r.Context(), id, &record)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, updated)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteClient(r.Context(), id); err != nil {
		response.ServiceError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *ClientHandler) GetCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	credits, err := h.service.GetClientCredits(r.Context(), id)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	response.Success(w, credits)
}

// GetCreditTotal renders the client's total credit amount. An absent total
// (no credits) renders as 0.
func (h *ClientHandler) GetCreditTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	sum, err := h.service.TotalCreditAmount(r.Context(), id)
	if err != nil {
		response.ServiceError(w, err)
		return
	}

	total := decimal.Zero
	if sum.Valid {
		total = sum.Decimal
	}

	response.Success(w, dto.ClientCreditTotal{ClientID: id, Total: total})
}

// pathID parses the numeric id path variable, replying 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid id", err)
		return 0, false
	}
	return id, true
}
