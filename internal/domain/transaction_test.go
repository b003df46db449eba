package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCadence_Advance(t *testing.T) {
	tests := []struct {
		name    string
		cadence Cadence
		from    time.Time
		want    time.Time
	}{
		{
			name:    "daily",
			cadence: CadenceDaily,
			from:    date(2025, time.March, 10),
			want:    date(2025, time.March, 11),
		},
		{
			name:    "weekly crosses month boundary",
			cadence: CadenceWeekly,
			from:    date(2025, time.March, 28),
			want:    date(2025, time.April, 4),
		},
		{
			name:    "monthly",
			cadence: CadenceMonthly,
			from:    date(2025, time.March, 15),
			want:    date(2025, time.April, 15),
		},
		{
			name:    "monthly from jan 31 normalizes into march",
			cadence: CadenceMonthly,
			from:    date(2025, time.January, 31),
			want:    date(2025, time.March, 3),
		},
		{
			name:    "yearly",
			cadence: CadenceYearly,
			from:    date(2025, time.June, 1),
			want:    date(2026, time.June, 1),
		},
		{
			name:    "december monthly wraps the year",
			cadence: CadenceMonthly,
			from:    date(2025, time.December, 15),
			want:    date(2026, time.January, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cadence.Advance(tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("Advance(%v) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(42.50)

	income := &Transaction{Amount: amount, Type: TxIncome}
	if !income.SignedAmount().Equal(amount) {
		t.Errorf("income SignedAmount = %s, want %s", income.SignedAmount(), amount)
	}

	expense := &Transaction{Amount: amount, Type: TxExpense}
	if !expense.SignedAmount().Equal(amount.Neg()) {
		t.Errorf("expense SignedAmount = %s, want %s", expense.SignedAmount(), amount.Neg())
	}
}

func TestTransaction_InstallmentCount(t *testing.T) {
	none := &Transaction{}
	if got := none.InstallmentCount(); got != 1 {
		t.Errorf("nil installments count = %d, want 1", got)
	}

	one := 1
	single := &Transaction{Installments: &one}
	if got := single.InstallmentCount(); got != 1 {
		t.Errorf("installments=1 count = %d, want 1", got)
	}

	twelve := 12
	spread := &Transaction{Installments: &twelve}
	if got := spread.InstallmentCount(); got != 12 {
		t.Errorf("installments=12 count = %d, want 12", got)
	}
}

func TestTransaction_ActiveRecurrence(t *testing.T) {
	due := date(2025, time.May, 1)

	active := &Transaction{Recurring: true, NextDueDate: &due}
	if !active.ActiveRecurrence() {
		t.Error("expected active recurrence")
	}

	paused := &Transaction{Recurring: true, NextDueDate: &due, RecurrencePaused: true}
	if paused.ActiveRecurrence() {
		t.Error("paused definition must not be active")
	}

	finished := &Transaction{Recurring: false, NextDueDate: nil}
	if finished.ActiveRecurrence() {
		t.Error("finished definition must not be active")
	}
}
