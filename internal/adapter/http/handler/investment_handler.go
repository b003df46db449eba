package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// InvestmentHandler handles investment HTTP requests.
type InvestmentHandler struct {
	investmentUC *usecase.InvestmentUseCase
}

// NewInvestmentHandler creates a new InvestmentHandler.
func NewInvestmentHandler(investmentUC *usecase.InvestmentUseCase) *InvestmentHandler {
	return &InvestmentHandler{investmentUC: investmentUC}
}

func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	investment, err := h.investmentUC.CreateInvestment(r.Context(), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create investment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvestmentFromDomain(investment))
}

func (h *InvestmentHandler) List(w http.ResponseWriter, r *http.Request) {
	investments, err := h.investmentUC.ListInvestments(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list investments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvestmentsFromDomain(investments))
}

func (h *InvestmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	investment, err := h.investmentUC.UpdateInvestment(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update investment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvestmentFromDomain(investment))
}

func (h *InvestmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.investmentUC.DeleteInvestment(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete investment", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
