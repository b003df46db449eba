package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrCardNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrInvestmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvoiceAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrMissingAttribution),
		errors.Is(err, domain.ErrDoubleAttribution),
		errors.Is(err, domain.ErrCardRequiresExpense),
		errors.Is(err, domain.ErrInvalidRecurrence),
		errors.Is(err, domain.ErrInvalidInstallments),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInvalidDescription),
		errors.Is(err, domain.ErrInvalidDay):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
