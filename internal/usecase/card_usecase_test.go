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

type cardFixture struct {
	accounts *mocks.MockAccountRepository
	cards    *mocks.MockCardRepository
	invoices *mocks.MockInvoiceRepository
	uc       *usecase.CardUseCase
}

func newCardFixture() *cardFixture {
	f := &cardFixture{
		accounts: mocks.NewMockAccountRepository(),
		cards:    mocks.NewMockCardRepository(),
		invoices: mocks.NewMockInvoiceRepository(),
	}
	f.uc = usecase.NewCardUseCase(
		mocks.NewMockTxManager(),
		f.cards,
		f.invoices,
		f.accounts,
		mocks.NewMockIDGenerator(),
	)
	return f
}

func TestCardUseCase_CreateCard_Validation(t *testing.T) {
	f := newCardFixture()
	ctx := context.Background()

	_, err := f.uc.CreateCard(ctx, testUser, usecase.CreateCardInput{
		Name: "Visa", Limit: decimal.NewFromInt(-1), ClosingDay: 25, DueDay: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = f.uc.CreateCard(ctx, testUser, usecase.CreateCardInput{
		Name: "Visa", Limit: decimal.NewFromInt(1000), ClosingDay: 32, DueDay: 10,
	})
	assert.Error(t, err)

	card, err := f.uc.CreateCard(ctx, testUser, usecase.CreateCardInput{
		Name: "Visa", Limit: decimal.NewFromInt(1000), ClosingDay: 25, DueDay: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, card.ClosingDay)
}

func TestCardUseCase_ListCards_Usage(t *testing.T) {
	f := newCardFixture()
	f.cards.Seed(&domain.CreditCard{
		ID: "card-1", UserID: testUser, Name: "Visa",
		Limit: decimal.NewFromInt(1000), ClosingDay: 25, DueDay: 10,
	})
	f.invoices.Seed(&domain.Invoice{
		ID: "inv-1", CreditCardID: "card-1", UserID: testUser,
		ReferenceMonth: "2025-01", Total: decimal.NewFromInt(300),
	})
	f.invoices.Seed(&domain.Invoice{
		ID: "inv-2", CreditCardID: "card-1", UserID: testUser,
		ReferenceMonth: "2025-02", Total: decimal.NewFromInt(150),
	})
	paidAt := time.Now().UTC()
	f.invoices.Seed(&domain.Invoice{
		ID: "inv-3", CreditCardID: "card-1", UserID: testUser,
		ReferenceMonth: "2024-12", Total: decimal.NewFromInt(999),
		Paid: true, PaidAt: &paidAt,
	})

	cards, err := f.uc.ListCards(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	// Paid invoices do not count against the limit.
	assert.Equal(t, "450", cards[0].Used.String())
	assert.Equal(t, "550", cards[0].Available.String())
}

func TestCardUseCase_PayInvoice(t *testing.T) {
	f := newCardFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(500)})
	f.invoices.Seed(&domain.Invoice{
		ID: "inv-1", CreditCardID: "card-1", UserID: testUser,
		ReferenceMonth: "2025-01", Total: decimal.NewFromInt(300),
	})
	ctx := context.Background()

	paid, err := f.uc.PayInvoice(ctx, "inv-1", testUser, "acc-1")
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	require.NotNil(t, paid.PaidWithAccountID)
	assert.Equal(t, "acc-1", *paid.PaidWithAccountID)
	assert.Equal(t, "200", f.accounts.Balance("acc-1").String())

	// Second payment is rejected and the account untouched.
	_, err = f.uc.PayInvoice(ctx, "inv-1", testUser, "acc-1")
	assert.ErrorIs(t, err, domain.ErrInvoiceAlreadyPaid)
	assert.Equal(t, "200", f.accounts.Balance("acc-1").String())
}

func TestCardUseCase_PayInvoice_NotFound(t *testing.T) {
	f := newCardFixture()
	_, err := f.uc.PayInvoice(context.Background(), "missing", testUser, "acc-1")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestCardUseCase_ListInvoices_UnknownCard(t *testing.T) {
	f := newCardFixture()
	_, err := f.uc.ListInvoices(context.Background(), "missing", testUser)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}
