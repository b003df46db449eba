package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/metrics"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// CardHandler handles credit-card and invoice HTTP requests.
type CardHandler struct {
	cardUC  *usecase.CardUseCase
	metrics *metrics.Metrics
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardUC *usecase.CardUseCase, m *metrics.Metrics) *CardHandler {
	return &CardHandler{cardUC: cardUC, metrics: m}
}

// Create creates a new credit card.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	card, err := h.cardUC.CreateCard(r.Context(), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create card", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CardFromDomain(card))
}

// List lists the user's cards with open-invoice usage and available limit.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardUC.ListCards(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list cards", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CardsFromUsage(cards))
}

// Get retrieves a card by ID.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	card, err := h.cardUC.GetCard(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get card", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CardFromDomain(card))
}

// Update edits a card.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	card, err := h.cardUC.UpdateCard(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update card", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CardFromDomain(card))
}

// Delete removes a card.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.cardUC.DeleteCard(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete card", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListInvoices lists the monthly invoices of a card.
func (h *CardHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.cardUC.ListInvoices(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoicesFromDomain(invoices))
}

// PayInvoice settles an invoice by debiting the chosen account.
func (h *CardHandler) PayInvoice(w http.ResponseWriter, r *http.Request) {
	var req dto.PayInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.cardUC.PayInvoice(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.AccountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to pay invoice", err.Error())
		return
	}

	h.metrics.InvoicesPaid.Inc()
	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}
