package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/middleware"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/metrics"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	ledgerUC     *usecase.LedgerUseCase
	recurrenceUC *usecase.RecurrenceUseCase
	metrics      *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerUC *usecase.LedgerUseCase, recurrenceUC *usecase.RecurrenceUseCase, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{ledgerUC: ledgerUC, recurrenceUC: recurrenceUC, metrics: m}
}

// Create creates a new transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.ledgerUC.CreateTransaction(r.Context(), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create transaction", err.Error())
		return
	}

	target := "none"
	if tx.AccountID != nil {
		target = "account"
	} else if tx.CreditCardID != nil {
		target = "card"
	}
	h.metrics.TransactionsCreated.WithLabelValues(target).Inc()

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(tx))
}

// List lists a page of the user's transactions.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	txs, err := h.ledgerUC.ListTransactions(r.Context(), middleware.UserID(r.Context()), limit, offset)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.ledgerUC.GetTransaction(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Update edits a transaction, reversing and reapplying its effect.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.ledgerUC.UpdateTransaction(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// Delete removes a transaction and reverses its effect.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.ledgerUC.DeleteTransaction(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete transaction", err.Error())
		return
	}

	h.metrics.TransactionsDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// Transfer moves money between two accounts.
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.ledgerUC.Transfer(r.Context(), middleware.UserID(r.Context()), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transfer", err.Error())
		return
	}

	h.metrics.TransfersCreated.Inc()
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// TogglePause pauses or resumes a recurring definition.
func (h *TransactionHandler) TogglePause(w http.ResponseWriter, r *http.Request) {
	var req dto.TogglePauseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.recurrenceUC.TogglePause(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), req.Paused)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to toggle pause", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(tx))
}

// ListGroup lists a recurring definition's materialized occurrences.
func (h *TransactionHandler) ListGroup(w http.ResponseWriter, r *http.Request) {
	txs, err := h.recurrenceUC.ListGroup(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list occurrences", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// DeleteWithHistory removes a recurring definition and all its occurrences.
func (h *TransactionHandler) DeleteWithHistory(w http.ResponseWriter, r *http.Request) {
	err := h.recurrenceUC.DeleteWithHistory(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to delete recurrence", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
