package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		expectError bool
	}{
		{name: "positive amount", amount: decimal.NewFromFloat(10.50), expectError: false},
		{name: "zero amount", amount: decimal.Zero, expectError: true},
		{name: "negative amount", amount: decimal.NewFromInt(-5), expectError: true},
		{name: "over maximum", amount: decimal.NewFromInt(2_000_000_000), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if tt.expectError && err != nil && !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected ErrInvalidAmount, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	if err := ValidateDescription("Groceries"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDescription(strings.Repeat("x", 300)); err == nil {
		t.Error("expected error for oversized description")
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -10)
	if limit != 50 || offset != 0 {
		t.Errorf("got (%d, %d), want (50, 0)", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("limit = %d, want 1000", limit)
	}
}
