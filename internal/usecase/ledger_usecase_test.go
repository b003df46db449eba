package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
	"github.com/dhomini-pereira/nexo-api/internal/usecase/mocks"
)

const testUser = "user-1"

type ledgerFixture struct {
	accounts *mocks.MockAccountRepository
	txs      *mocks.MockTransactionRepository
	cards    *mocks.MockCardRepository
	invoices *mocks.MockInvoiceRepository
	uc       *usecase.LedgerUseCase
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		accounts: mocks.NewMockAccountRepository(),
		txs:      mocks.NewMockTransactionRepository(),
		cards:    mocks.NewMockCardRepository(),
		invoices: mocks.NewMockInvoiceRepository(),
	}
	f.uc = usecase.NewLedgerUseCase(
		mocks.NewMockTxManager(),
		f.txs,
		f.accounts,
		f.cards,
		f.invoices,
		mocks.NewMockIDGenerator(),
	)
	return f
}

func (f *ledgerFixture) seedAccount(id string, balance float64) {
	f.accounts.Seed(&domain.Account{
		ID:      id,
		UserID:  testUser,
		Name:    "Checking",
		Type:    domain.AccountChecking,
		Balance: decimal.NewFromFloat(balance),
	})
}

func (f *ledgerFixture) seedCard(id string, closingDay int) {
	f.cards.Seed(&domain.CreditCard{
		ID:         id,
		UserID:     testUser,
		Name:       "Visa",
		Limit:      decimal.NewFromInt(5000),
		ClosingDay: closingDay,
		DueDay:     10,
	})
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestLedgerUseCase_CreateTransaction_AccountExpense(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 100)

	tx, err := f.uc.CreateTransaction(context.Background(), testUser, usecase.CreateTransactionInput{
		Description: "Groceries",
		Amount:      decimal.NewFromInt(30),
		Type:        domain.TxExpense,
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		AccountID:   strPtr("acc-1"),
	})
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, "70", f.accounts.Balance("acc-1").String())
	assert.NotNil(t, f.txs.Stored(tx.ID))
}

func TestLedgerUseCase_BalanceConservation(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 100)
	ctx := context.Background()

	first, err := f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description: "Expense A",
		Amount:      decimal.NewFromInt(30),
		Type:        domain.TxExpense,
		Date:        time.Now().UTC(),
		AccountID:   strPtr("acc-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "70", f.accounts.Balance("acc-1").String())

	second, err := f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description: "Expense B",
		Amount:      decimal.NewFromInt(20),
		Type:        domain.TxExpense,
		Date:        time.Now().UTC(),
		AccountID:   strPtr("acc-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "50", f.accounts.Balance("acc-1").String())

	require.NoError(t, f.uc.DeleteTransaction(ctx, second.ID, testUser))
	assert.Equal(t, "70", f.accounts.Balance("acc-1").String())

	require.NoError(t, f.uc.DeleteTransaction(ctx, first.ID, testUser))
	assert.Equal(t, "100", f.accounts.Balance("acc-1").String())
}

func TestLedgerUseCase_CreateTransaction_Validation(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 100)
	f.seedCard("card-1", 25)
	monthly := domain.CadenceMonthly

	tests := []struct {
		name  string
		input usecase.CreateTransactionInput
		want  error
	}{
		{
			name: "zero amount",
			input: usecase.CreateTransactionInput{
				Amount: decimal.Zero, Type: domain.TxExpense, AccountID: strPtr("acc-1"),
			},
			want: domain.ErrInvalidAmount,
		},
		{
			name: "income on a card",
			input: usecase.CreateTransactionInput{
				Amount: decimal.NewFromInt(10), Type: domain.TxIncome, CreditCardID: strPtr("card-1"),
			},
			want: domain.ErrCardRequiresExpense,
		},
		{
			name: "both attributions",
			input: usecase.CreateTransactionInput{
				Amount: decimal.NewFromInt(10), Type: domain.TxExpense,
				AccountID: strPtr("acc-1"), CreditCardID: strPtr("card-1"),
			},
			want: domain.ErrDoubleAttribution,
		},
		{
			name: "no attribution",
			input: usecase.CreateTransactionInput{
				Amount: decimal.NewFromInt(10), Type: domain.TxExpense,
			},
			want: domain.ErrMissingAttribution,
		},
		{
			name: "recurring without cadence",
			input: usecase.CreateTransactionInput{
				Amount: decimal.NewFromInt(10), Type: domain.TxExpense,
				AccountID: strPtr("acc-1"), Recurring: true,
			},
			want: domain.ErrInvalidRecurrence,
		},
		{
			name: "zero installments",
			input: usecase.CreateTransactionInput{
				Amount: decimal.NewFromInt(10), Type: domain.TxExpense,
				CreditCardID: strPtr("card-1"), Installments: intPtr(0),
			},
			want: domain.ErrInvalidInstallments,
		},
		{
			name: "unknown type",
			input: usecase.CreateTransactionInput{
				Amount: decimal.NewFromInt(10), Type: domain.TxType("refund"),
				AccountID: strPtr("acc-1"), Recurrence: &monthly,
			},
			want: domain.ErrInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.CreateTransaction(context.Background(), testUser, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLedgerUseCase_CreateTransaction_CardInstallments(t *testing.T) {
	f := newLedgerFixture()
	f.seedCard("card-1", 25)

	_, err := f.uc.CreateTransaction(context.Background(), testUser, usecase.CreateTransactionInput{
		Description:  "New phone",
		Amount:       decimal.NewFromInt(100),
		Type:         domain.TxExpense,
		Date:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CreditCardID: strPtr("card-1"),
		Installments: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, f.invoices.Buckets("card-1"))
	assert.Equal(t, "33.33", f.invoices.BucketTotal("card-1", "2025-01").String())
	assert.Equal(t, "33.33", f.invoices.BucketTotal("card-1", "2025-02").String())
	assert.Equal(t, "33.33", f.invoices.BucketTotal("card-1", "2025-03").String())
}

func TestLedgerUseCase_CreateTransaction_CardBucketBoundary(t *testing.T) {
	f := newLedgerFixture()
	f.seedCard("card-1", 25)
	ctx := context.Background()

	// Purchase on the closing day lands in the current month.
	_, err := f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description:  "On closing day",
		Amount:       decimal.NewFromInt(40),
		Type:         domain.TxExpense,
		Date:         time.Date(2025, 1, 25, 0, 0, 0, 0, time.UTC),
		CreditCardID: strPtr("card-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "40", f.invoices.BucketTotal("card-1", "2025-01").String())

	// One day later rolls into February.
	_, err = f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description:  "After closing day",
		Amount:       decimal.NewFromInt(60),
		Type:         domain.TxExpense,
		Date:         time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC),
		CreditCardID: strPtr("card-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "60", f.invoices.BucketTotal("card-1", "2025-02").String())
}

func TestLedgerUseCase_DeleteTransaction_CardReversalExactness(t *testing.T) {
	f := newLedgerFixture()
	f.seedCard("card-1", 25)
	ctx := context.Background()

	tx, err := f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description:  "Installment purchase",
		Amount:       decimal.NewFromInt(100),
		Type:         domain.TxExpense,
		Date:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		CreditCardID: strPtr("card-1"),
		Installments: intPtr(3),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteTransaction(ctx, tx.ID, testUser))

	// Same rounding on both sides, so every bucket is back to zero.
	for _, month := range []string{"2025-01", "2025-02", "2025-03"} {
		assert.True(t, f.invoices.BucketTotal("card-1", month).IsZero(),
			"bucket %s not zeroed", month)
	}
}

func TestLedgerUseCase_UpdateTransaction_AmountChange(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 100)
	ctx := context.Background()

	tx, err := f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description: "Dinner",
		Amount:      decimal.NewFromInt(30),
		Type:        domain.TxExpense,
		Date:        time.Now().UTC(),
		AccountID:   strPtr("acc-1"),
	})
	require.NoError(t, err)
	require.Equal(t, "70", f.accounts.Balance("acc-1").String())

	newAmount := decimal.NewFromInt(50)
	updated, err := f.uc.UpdateTransaction(ctx, tx.ID, testUser, usecase.UpdateTransactionInput{
		Amount: &newAmount,
	})
	require.NoError(t, err)

	// Equivalent to delete-then-recreate with the new amount.
	assert.Equal(t, "50", f.accounts.Balance("acc-1").String())
	assert.Equal(t, "50", updated.Amount.String())
}

func TestLedgerUseCase_UpdateTransaction_MoveAccountToCard(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 100)
	f.seedCard("card-1", 25)
	ctx := context.Background()

	tx, err := f.uc.CreateTransaction(ctx, testUser, usecase.CreateTransactionInput{
		Description: "Subscription",
		Amount:      decimal.NewFromInt(25),
		Type:        domain.TxExpense,
		Date:        time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		AccountID:   strPtr("acc-1"),
	})
	require.NoError(t, err)
	require.Equal(t, "75", f.accounts.Balance("acc-1").String())

	updated, err := f.uc.UpdateTransaction(ctx, tx.ID, testUser, usecase.UpdateTransactionInput{
		CreditCardID: strPtr("card-1"),
	})
	require.NoError(t, err)

	// Account refunded, invoice bucket charged, attribution moved.
	assert.Equal(t, "100", f.accounts.Balance("acc-1").String())
	assert.Equal(t, "25", f.invoices.BucketTotal("card-1", "2025-04").String())
	assert.Nil(t, updated.AccountID)
	require.NotNil(t, updated.CreditCardID)
	assert.Equal(t, "card-1", *updated.CreditCardID)
}

func TestLedgerUseCase_UpdateTransaction_DoubleAttribution(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.UpdateTransaction(context.Background(), "tx-1", testUser, usecase.UpdateTransactionInput{
		AccountID:    strPtr("acc-1"),
		CreditCardID: strPtr("card-1"),
	})
	assert.ErrorIs(t, err, domain.ErrDoubleAttribution)
}

func TestLedgerUseCase_DeleteTransaction_NotFound(t *testing.T) {
	f := newLedgerFixture()
	err := f.uc.DeleteTransaction(context.Background(), "missing", testUser)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}

func TestLedgerUseCase_Transfer(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 100)
	f.seedAccount("acc-2", 10)
	ctx := context.Background()

	err := f.uc.Transfer(ctx, testUser, usecase.TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "60", f.accounts.Balance("acc-1").String())
	assert.Equal(t, "50", f.accounts.Balance("acc-2").String())

	legs, err := f.uc.ListTransactions(ctx, testUser, 0, 0)
	require.NoError(t, err)
	require.Len(t, legs, 2)
	for _, leg := range legs {
		assert.Nil(t, leg.CategoryID)
		assert.NotNil(t, leg.AccountID)
	}
}

func TestLedgerUseCase_Transfer_SameAccount(t *testing.T) {
	f := newLedgerFixture()
	err := f.uc.Transfer(context.Background(), testUser, usecase.TransferInput{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-1",
		Amount:        decimal.NewFromInt(40),
	})
	assert.ErrorIs(t, err, domain.ErrSameAccount)
}

func TestLedgerUseCase_CreateTransaction_RecurringDefinition(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 1000)
	monthly := domain.CadenceMonthly
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tx, err := f.uc.CreateTransaction(context.Background(), testUser, usecase.CreateTransactionInput{
		Description:     "Rent",
		Amount:          decimal.NewFromInt(500),
		Type:            domain.TxExpense,
		Date:            start,
		AccountID:       strPtr("acc-1"),
		Recurring:       true,
		Recurrence:      &monthly,
		RecurrenceCount: intPtr(12),
	})
	require.NoError(t, err)

	// The creation itself posts the first occurrence's effect.
	assert.Equal(t, "500", f.accounts.Balance("acc-1").String())
	assert.Equal(t, 1, tx.RecurrenceCurrent)
	require.NotNil(t, tx.NextDueDate)
	assert.True(t, tx.NextDueDate.Equal(start.AddDate(0, 1, 0)))
}
