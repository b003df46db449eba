package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhomini-pereira/nexo-api/internal/adapter/http/dto"
	redisrepo "github.com/dhomini-pereira/nexo-api/internal/adapter/repository/redis"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/metrics"
	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

// CronHandler exposes the recurrence sweep to the external scheduler.
type CronHandler struct {
	recurrenceUC *usecase.RecurrenceUseCase
	lock         *redisrepo.SweepLock
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewCronHandler creates a new CronHandler.
func NewCronHandler(recurrenceUC *usecase.RecurrenceUseCase, lock *redisrepo.SweepLock, m *metrics.Metrics, logger zerolog.Logger) *CronHandler {
	return &CronHandler{
		recurrenceUC: recurrenceUC,
		lock:         lock,
		metrics:      m,
		logger:       logger,
	}
}

// Sweep materializes every due recurring transaction. The scheduler may
// re-deliver the trigger, so a per-day Redis lock makes the endpoint safe
// to call more than once.
func (h *CronHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	day := time.Now().UTC().Format("2006-01-02")

	acquired, err := h.lock.Acquire(ctx, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to acquire sweep lock", err.Error())
		return
	}
	if !acquired {
		h.logger.Info().Str("day", day).Msg("sweep already running, skipping")
		writeJSON(w, http.StatusConflict, map[string]string{"status": "already running"})
		return
	}

	h.metrics.SweepRuns.Inc()
	start := time.Now()

	result, err := h.recurrenceUC.Sweep(ctx)
	h.metrics.SweepDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		// Free the lock so the scheduler's retry is not blocked until TTL.
		if relErr := h.lock.Release(ctx, day); relErr != nil {
			h.logger.Error().Err(relErr).Str("day", day).Msg("failed to release sweep lock")
		}
		writeError(w, http.StatusInternalServerError, "sweep failed", err.Error())
		return
	}

	h.logger.Info().
		Str("day", day).
		Int("due", result.Due).
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Msg("recurrence sweep finished")

	writeJSON(w, http.StatusOK, dto.SweepResponse{
		Due:       result.Due,
		Processed: result.Processed,
		Failed:    result.Failed,
	})
}
