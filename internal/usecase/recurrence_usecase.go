package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// SweepMetrics records outcomes of the recurrence sweep.
type SweepMetrics interface {
	RecurrenceProcessed()
	RecurrenceFailed()
}

// RecurrenceUseCase materializes due recurring definitions and manages
// their lifecycle (pause, resume, finish, delete with history).
type RecurrenceUseCase struct {
	txManager   TxManager
	txRepo      TransactionRepository
	accountRepo AccountRepository
	cardRepo    CardRepository
	invoiceRepo InvoiceRepository
	idGen       IDGenerator
	notifier    PushNotifier
	retrier     Retrier
	metrics     SweepMetrics
	logger      zerolog.Logger
	effects     ledgerEffects
}

// NewRecurrenceUseCase creates a new RecurrenceUseCase.
func NewRecurrenceUseCase(
	txManager TxManager,
	txRepo TransactionRepository,
	accountRepo AccountRepository,
	cardRepo CardRepository,
	invoiceRepo InvoiceRepository,
	idGen IDGenerator,
	notifier PushNotifier,
	retrier Retrier,
	metrics SweepMetrics,
	logger zerolog.Logger,
) *RecurrenceUseCase {
	return &RecurrenceUseCase{
		txManager:   txManager,
		txRepo:      txRepo,
		accountRepo: accountRepo,
		cardRepo:    cardRepo,
		invoiceRepo: invoiceRepo,
		idGen:       idGen,
		notifier:    notifier,
		retrier:     retrier,
		metrics:     metrics,
		logger:      logger,
		effects: ledgerEffects{
			accountRepo: accountRepo,
			invoiceRepo: invoiceRepo,
			cardRepo:    cardRepo,
		},
	}
}

// SweepResult summarizes one sweep run.
type SweepResult struct {
	Due       int
	Processed int
	Failed    int
}

// Sweep materializes every active recurring definition whose due date has
// arrived. Each definition gets its own unit of work so one failure never
// poisons the batch; failed items are logged, counted and skipped. Push
// notifications are sent only after the commit and never fail the sweep.
func (uc *RecurrenceUseCase) Sweep(ctx context.Context) (*SweepResult, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	due, err := uc.txRepo.ListDueRecurring(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list due recurring: %w", err)
	}

	result := &SweepResult{Due: len(due)}

	for _, def := range due {
		if def.RecurrencePaused || !def.Recurring {
			continue
		}

		err := uc.retrier.Retry(ctx, func() error {
			return uc.materialize(ctx, def)
		})
		if err != nil {
			result.Failed++
			uc.metrics.RecurrenceFailed()
			uc.logger.Error().Err(err).
				Str("transaction_id", def.ID).
				Str("user_id", def.UserID).
				Msg("recurrence sweep item failed")
			continue
		}

		result.Processed++
		uc.metrics.RecurrenceProcessed()
		uc.notify(ctx, def)
	}

	uc.logger.Info().
		Int("due", result.Due).
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Msg("recurrence sweep finished")

	return result, nil
}

// materialize runs one definition's occurrence inside its own transaction:
// insert the occurrence, apply its financial effect, then either finish the
// definition (cap reached) or advance its due date.
func (uc *RecurrenceUseCase) materialize(ctx context.Context, def *domain.Transaction) error {
	if def.NextDueDate == nil || def.Recurrence == nil {
		return domain.ErrInvalidRecurrence
	}

	occurrence := &domain.Transaction{
		ID:                uc.idGen.Generate(),
		UserID:            def.UserID,
		AccountID:         def.AccountID,
		CategoryID:        def.CategoryID,
		CreditCardID:      def.CreditCardID,
		Description:       def.Description,
		Amount:            def.Amount,
		Type:              def.Type,
		Date:              *def.NextDueDate,
		RecurrenceGroupID: &def.ID,
		CreatedAt:         time.Now().UTC(),
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if err := uc.txRepo.Create(ctx, uow, occurrence); err != nil {
		return err
	}

	if err := uc.effects.apply(ctx, uow, occurrence); err != nil {
		return err
	}

	newCurrent := def.RecurrenceCurrent + 1
	if def.RecurrenceCount != nil && newCurrent >= *def.RecurrenceCount {
		// Cap reached: the definition becomes a plain finished row.
		if err := uc.txRepo.UpdateRecurrence(ctx, uow, def.ID, nil, newCurrent, false); err != nil {
			return err
		}
	} else {
		next := def.Recurrence.Advance(*def.NextDueDate)
		if err := uc.txRepo.UpdateRecurrence(ctx, uow, def.ID, &next, newCurrent, true); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (uc *RecurrenceUseCase) notify(ctx context.Context, def *domain.Transaction) {
	title := "Recurring transaction posted"
	body := fmt.Sprintf("%s (%s)", def.Description, def.Amount.StringFixed(2))
	if err := uc.notifier.SendPush(ctx, def.UserID, title, body); err != nil {
		uc.logger.Warn().Err(err).
			Str("user_id", def.UserID).
			Msg("push notification failed")
	}
}

// TogglePause flips only the paused flag on a recurring definition.
func (uc *RecurrenceUseCase) TogglePause(ctx context.Context, id, userID string, paused bool) (*domain.Transaction, error) {
	stored, err := uc.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !stored.Recurring {
		return nil, domain.ErrInvalidRecurrence
	}
	return uc.txRepo.SetPaused(ctx, id, userID, paused)
}

// ListGroup returns a definition's materialized occurrences.
func (uc *RecurrenceUseCase) ListGroup(ctx context.Context, id, userID string) ([]*domain.Transaction, error) {
	if _, err := uc.txRepo.GetByID(ctx, id, userID); err != nil {
		return nil, err
	}
	return uc.txRepo.ListByGroup(ctx, id, userID)
}

// DeleteWithHistory removes a recurring definition together with every
// occurrence it produced, reversing each row's financial effect, all in a
// single unit of work.
func (uc *RecurrenceUseCase) DeleteWithHistory(ctx context.Context, id, userID string) error {
	def, err := uc.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	uow, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	occurrences, err := uc.txRepo.DeleteByGroup(ctx, uow, id, userID)
	if err != nil {
		return err
	}
	for _, occ := range occurrences {
		if err := uc.effects.reverse(ctx, uow, occ); err != nil {
			return err
		}
	}

	if err := uc.txRepo.Delete(ctx, uow, id, userID); err != nil {
		return err
	}
	if err := uc.effects.reverse(ctx, uow, def); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
