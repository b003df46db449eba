package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "account not found", err: domain.ErrAccountNotFound, expected: http.StatusNotFound},
		{name: "transaction not found", err: domain.ErrTransactionNotFound, expected: http.StatusNotFound},
		{name: "card not found", err: domain.ErrCardNotFound, expected: http.StatusNotFound},
		{name: "invoice not found", err: domain.ErrInvoiceNotFound, expected: http.StatusNotFound},
		{name: "category not found", err: domain.ErrCategoryNotFound, expected: http.StatusNotFound},
		{name: "goal not found", err: domain.ErrGoalNotFound, expected: http.StatusNotFound},
		{name: "investment not found", err: domain.ErrInvestmentNotFound, expected: http.StatusNotFound},
		{name: "invoice already paid", err: domain.ErrInvoiceAlreadyPaid, expected: http.StatusConflict},
		{name: "invalid amount", err: domain.ErrInvalidAmount, expected: http.StatusBadRequest},
		{name: "invalid type", err: domain.ErrInvalidType, expected: http.StatusBadRequest},
		{name: "missing attribution", err: domain.ErrMissingAttribution, expected: http.StatusBadRequest},
		{name: "double attribution", err: domain.ErrDoubleAttribution, expected: http.StatusBadRequest},
		{name: "card requires expense", err: domain.ErrCardRequiresExpense, expected: http.StatusBadRequest},
		{name: "invalid recurrence", err: domain.ErrInvalidRecurrence, expected: http.StatusBadRequest},
		{name: "invalid installments", err: domain.ErrInvalidInstallments, expected: http.StatusBadRequest},
		{name: "same account transfer", err: domain.ErrSameAccount, expected: http.StatusBadRequest},
		{name: "invalid description", err: domain.ErrInvalidDescription, expected: http.StatusBadRequest},
		{name: "invalid day", err: domain.ErrInvalidDay, expected: http.StatusBadRequest},
		{name: "wrapped sentinel", err: fmt.Errorf("create transaction: %w", domain.ErrInvalidAmount), expected: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("pool exhausted"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]string{"id": "acc-1"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected application/json, got %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["id"] != "acc-1" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, http.StatusBadRequest, "invalid payload", "amount must be positive")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "invalid payload" || body.Message != "amount must be positive" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
