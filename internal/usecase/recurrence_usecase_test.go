package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
	"github.com/dhomini-pereira/nexo-api/internal/usecase/mocks"
)

type recurrenceFixture struct {
	accounts *mocks.MockAccountRepository
	txs      *mocks.MockTransactionRepository
	cards    *mocks.MockCardRepository
	invoices *mocks.MockInvoiceRepository
	notifier *mocks.MockPushNotifier
	metrics  *mocks.MockSweepMetrics
	uc       *usecase.RecurrenceUseCase
}

func newRecurrenceFixture() *recurrenceFixture {
	f := &recurrenceFixture{
		accounts: mocks.NewMockAccountRepository(),
		txs:      mocks.NewMockTransactionRepository(),
		cards:    mocks.NewMockCardRepository(),
		invoices: mocks.NewMockInvoiceRepository(),
		notifier: mocks.NewMockPushNotifier(),
		metrics:  mocks.NewMockSweepMetrics(),
	}
	f.uc = usecase.NewRecurrenceUseCase(
		mocks.NewMockTxManager(),
		f.txs,
		f.accounts,
		f.cards,
		f.invoices,
		mocks.NewMockIDGenerator(),
		f.notifier,
		mocks.NewMockRetrier(),
		f.metrics,
		zerolog.Nop(),
	)
	return f
}

// seedDefinition adds an active monthly definition due yesterday.
func (f *recurrenceFixture) seedDefinition(id string, amount int64, count *int) *domain.Transaction {
	monthly := domain.CadenceMonthly
	due := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	acc := "acc-1"
	def := &domain.Transaction{
		ID:                id,
		UserID:            testUser,
		AccountID:         &acc,
		Description:       "Rent",
		Amount:            decimal.NewFromInt(amount),
		Type:              domain.TxExpense,
		Date:              due.AddDate(0, -1, 0),
		Recurring:         true,
		Recurrence:        &monthly,
		NextDueDate:       &due,
		RecurrenceCount:   count,
		RecurrenceCurrent: 1,
	}
	f.txs.Seed(def)
	return def
}

func TestRecurrenceUseCase_Sweep_MaterializesOccurrence(t *testing.T) {
	f := newRecurrenceFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(1000)})
	def := f.seedDefinition("def-1", 200, nil)
	oldDue := *def.NextDueDate

	result, err := f.uc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Due)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Failed)

	// Account debited by the occurrence.
	assert.Equal(t, "800", f.accounts.Balance("acc-1").String())

	// Definition advanced one step.
	stored := f.txs.Stored("def-1")
	require.NotNil(t, stored)
	assert.Equal(t, 2, stored.RecurrenceCurrent)
	require.NotNil(t, stored.NextDueDate)
	assert.True(t, stored.NextDueDate.Equal(oldDue.AddDate(0, 1, 0)))
	assert.True(t, stored.Recurring)

	// One occurrence pointing back at the definition.
	occs, err := f.uc.ListGroup(context.Background(), "def-1", testUser)
	require.NoError(t, err)
	require.Len(t, occs, 1)
	assert.False(t, occs[0].Recurring)
	assert.True(t, occs[0].Date.Equal(oldDue))

	// Post-commit notification.
	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, testUser, f.notifier.Sent[0].UserID)
	assert.Equal(t, 1, f.metrics.Processed)
}

func TestRecurrenceUseCase_Sweep_SecondRunIsNoOp(t *testing.T) {
	f := newRecurrenceFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(1000)})
	f.seedDefinition("def-1", 200, nil)

	ctx := context.Background()

	first, err := f.uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Processed)

	// The advanced due date is in the future, so a re-delivered trigger
	// finds nothing due and charges nothing.
	second, err := f.uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Due)
	assert.Equal(t, 0, second.Processed)

	assert.Equal(t, "800", f.accounts.Balance("acc-1").String())
	occs, err := f.uc.ListGroup(ctx, "def-1", testUser)
	require.NoError(t, err)
	assert.Len(t, occs, 1)
}

func TestRecurrenceUseCase_Sweep_FinishesAtCap(t *testing.T) {
	f := newRecurrenceFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(1000)})
	count := 2
	f.seedDefinition("def-1", 100, &count)
	ctx := context.Background()

	// First sweep fires occurrence number 2 of 2 and finishes the
	// definition.
	result, err := f.uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	stored := f.txs.Stored("def-1")
	require.NotNil(t, stored)
	assert.False(t, stored.Recurring)
	assert.Nil(t, stored.NextDueDate)
	assert.Equal(t, 2, stored.RecurrenceCurrent)

	// A later sweep finds nothing due.
	result, err = f.uc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Due)
	assert.Equal(t, "900", f.accounts.Balance("acc-1").String())
}

func TestRecurrenceUseCase_Sweep_SkipsPaused(t *testing.T) {
	f := newRecurrenceFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(1000)})
	def := f.seedDefinition("def-1", 100, nil)
	def.RecurrencePaused = true

	result, err := f.uc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Due)
	assert.Equal(t, "1000", f.accounts.Balance("acc-1").String())
}

func TestRecurrenceUseCase_Sweep_FailureSkipsItem(t *testing.T) {
	f := newRecurrenceFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(1000)})
	f.seedDefinition("def-1", 100, nil)
	f.seedDefinition("def-2", 50, nil)

	// def-1's occurrence insert blows up; def-2 must still process.
	boom := errors.New("insert failed")
	f.txs.CreateFunc = func(ctx context.Context, uow usecase.UnitOfWork, tx *domain.Transaction) error {
		if tx.RecurrenceGroupID != nil && *tx.RecurrenceGroupID == "def-1" {
			return boom
		}
		f.txs.Seed(tx)
		return nil
	}

	result, err := f.uc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Due)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, f.metrics.Failed)
	assert.Equal(t, 1, f.metrics.Processed)

	// Only def-2's occurrence landed on the balance.
	assert.Equal(t, "950", f.accounts.Balance("acc-1").String())
}

func TestRecurrenceUseCase_TogglePause(t *testing.T) {
	f := newRecurrenceFixture()
	f.seedDefinition("def-1", 100, nil)
	ctx := context.Background()

	paused, err := f.uc.TogglePause(ctx, "def-1", testUser, true)
	require.NoError(t, err)
	assert.True(t, paused.RecurrencePaused)

	resumed, err := f.uc.TogglePause(ctx, "def-1", testUser, false)
	require.NoError(t, err)
	assert.False(t, resumed.RecurrencePaused)
}

func TestRecurrenceUseCase_TogglePause_NotRecurring(t *testing.T) {
	f := newRecurrenceFixture()
	acc := "acc-1"
	f.txs.Seed(&domain.Transaction{
		ID: "tx-1", UserID: testUser, AccountID: &acc,
		Amount: decimal.NewFromInt(10), Type: domain.TxExpense,
	})

	_, err := f.uc.TogglePause(context.Background(), "tx-1", testUser, true)
	assert.ErrorIs(t, err, domain.ErrInvalidRecurrence)
}

func TestRecurrenceUseCase_DeleteWithHistory(t *testing.T) {
	f := newRecurrenceFixture()
	f.accounts.Seed(&domain.Account{ID: "acc-1", UserID: testUser, Balance: decimal.NewFromInt(1000)})
	f.seedDefinition("def-1", 100, nil)
	ctx := context.Background()

	// Two sweeps produce two occurrences; nudge the due date back between
	// runs so the second fires too.
	_, err := f.uc.Sweep(ctx)
	require.NoError(t, err)
	stored := f.txs.Stored("def-1")
	require.NotNil(t, stored)
	past := time.Now().UTC().AddDate(0, 0, -1)
	stored.NextDueDate = &past
	_, err = f.uc.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, "800", f.accounts.Balance("acc-1").String())

	require.NoError(t, f.uc.DeleteWithHistory(ctx, "def-1", testUser))

	// Definition and both occurrences gone. Each occurrence's delta comes
	// back (+200) and the definition row's own stored effect is reversed
	// too (+100), mirroring a plain delete of every row in the group.
	assert.Nil(t, f.txs.Stored("def-1"))
	list, err := f.txs.ListByUser(ctx, testUser, 100, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, "1100", f.accounts.Balance("acc-1").String())
}

func TestRecurrenceUseCase_DeleteWithHistory_NotFound(t *testing.T) {
	f := newRecurrenceFixture()
	err := f.uc.DeleteWithHistory(context.Background(), "missing", testUser)
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
