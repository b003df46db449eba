package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInvoiceMonth(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		closingDay int
		want       string
	}{
		{
			name:       "on closing day stays in current month",
			date:       date(2025, time.January, 25),
			closingDay: 25,
			want:       "2025-01",
		},
		{
			name:       "day after closing rolls to next month",
			date:       date(2025, time.January, 26),
			closingDay: 25,
			want:       "2025-02",
		},
		{
			name:       "before closing day stays",
			date:       date(2025, time.January, 10),
			closingDay: 25,
			want:       "2025-01",
		},
		{
			name:       "december after closing rolls to january next year",
			date:       date(2025, time.December, 26),
			closingDay: 25,
			want:       "2026-01",
		},
		{
			name:       "december on closing stays in december",
			date:       date(2025, time.December, 25),
			closingDay: 25,
			want:       "2025-12",
		},
		{
			name:       "closing day 1 pushes almost everything forward",
			date:       date(2025, time.June, 2),
			closingDay: 1,
			want:       "2025-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InvoiceMonth(tt.date, tt.closingDay)
			if got != tt.want {
				t.Errorf("InvoiceMonth(%v, %d) = %s, want %s", tt.date, tt.closingDay, got, tt.want)
			}
		})
	}
}

func TestInstallmentShare(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		count  int
		want   string
	}{
		{
			name:   "single installment keeps full amount",
			amount: decimal.NewFromFloat(100.00),
			count:  1,
			want:   "100",
		},
		{
			name:   "even split",
			amount: decimal.NewFromFloat(100.00),
			count:  4,
			want:   "25",
		},
		{
			name:   "uneven split rounds to cents",
			amount: decimal.NewFromFloat(100.00),
			count:  3,
			want:   "33.33",
		},
		{
			name:   "zero count treated as one",
			amount: decimal.NewFromFloat(42.50),
			count:  0,
			want:   "42.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallmentShare(tt.amount, tt.count)
			if got.String() != tt.want {
				t.Errorf("InstallmentShare(%s, %d) = %s, want %s", tt.amount, tt.count, got, tt.want)
			}
		})
	}
}

func TestCreditCard_AvailableLimit(t *testing.T) {
	card := &CreditCard{Limit: decimal.NewFromInt(1000)}
	got := card.AvailableLimit(decimal.NewFromFloat(350.75))
	if got.String() != "649.25" {
		t.Errorf("AvailableLimit = %s, want 649.25", got)
	}
}
