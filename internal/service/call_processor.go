package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webhook-dispatcher/internal/core/domain"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LockKey is the per-subscription delivery lock key.
func LockKey(webhookID uuid.UUID) string {
	return "webhook:lock:" + webhookID.String()
}

// ProcessorOptions configures a CallProcessor.
type ProcessorOptions struct {
	MaxAttempts          int
	AutoDisableThreshold int
	LockTTL              time.Duration
	LockRetryDelay       time.Duration
	BackoffBase          time.Duration
}

// CallProcessor implements ports.CallProcessor. It drives one call through
// PENDING -> IN_PROGRESS -> {DELIVERED, PENDING, FAILED, DISCARDED} while
// holding the subscription's delivery lock.
type CallProcessor struct {
	calls     ports.CallRepository
	webhooks  ports.WebhookRepository
	txManager ports.DBTransactor
	lock      ports.DistributedLock
	executor  ports.DeliveryExecutor
	opts      ProcessorOptions
	now       func() time.Time
	log       zerolog.Logger
}

// NewCallProcessor creates a new call processor.
func NewCallProcessor(
	calls ports.CallRepository,
	webhooks ports.WebhookRepository,
	txManager ports.DBTransactor,
	lock ports.DistributedLock,
	executor ports.DeliveryExecutor,
	opts ProcessorOptions,
	log zerolog.Logger,
) *CallProcessor {
	return &CallProcessor{
		calls:     calls,
		webhooks:  webhooks,
		txManager: txManager,
		lock:      lock,
		executor:  executor,
		opts:      opts,
		now:       time.Now,
		log:       log,
	}
}

// Process runs one queue job. A nil return acks the job, ErrLockNotAcquired
// asks for a requeue without consuming an attempt, and any other error lets
// the queue retry with its own backoff.
func (p *CallProcessor) Process(ctx context.Context, job ports.Job) error {
	callID, err := uuid.Parse(job.ID)
	if err != nil {
		p.log.Warn().Str("job_id", job.ID).Msg("webhook: dropping job with malformed call id")
		return nil
	}

	call, err := p.calls.GetByID(ctx, callID)
	if err != nil {
		return fmt.Errorf("load call: %w", err)
	}
	if call == nil {
		p.log.Debug().Str("call_id", job.ID).Msg("webhook: call no longer exists, skipping")
		return nil
	}
	if call.IsTerminal() {
		p.log.Debug().Str("call_id", job.ID).Str("status", string(call.Status)).Msg("webhook: call already terminal, skipping")
		return nil
	}

	log := p.log.With().
		Str("call_id", call.ID.String()).
		Str("webhook_id", call.WebhookID.String()).
		Logger()

	webhook, err := p.webhooks.GetByID(ctx, call.WebhookID)
	if err != nil {
		return fmt.Errorf("load webhook: %w", err)
	}
	if webhook == nil || !webhook.IsActive() {
		return p.discard(ctx, call, log)
	}

	attempt := job.AttemptsMade + 1
	ok, err := p.calls.MarkInProgress(ctx, call.ID, attempt)
	if err != nil {
		return fmt.Errorf("mark call in progress: %w", err)
	}
	if !ok {
		return nil
	}
	call.Status = domain.CallStatusInProgress
	call.Attempt = attempt
	log = log.With().Int("attempt", attempt).Logger()

	key := LockKey(webhook.ID)
	token := uuid.NewString()
	acquired, err := p.lock.Acquire(ctx, key, token, p.opts.LockTTL)
	if err != nil || !acquired {
		return p.yieldLock(ctx, call, err, log)
	}
	defer func() {
		// Release must run even when ctx was cancelled by shutdown.
		if _, err := p.lock.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Warn().Err(err).Msg("webhook: failed to release delivery lock")
		}
	}()

	// Another worker may have tripped the breaker while we waited for the lock.
	webhook, err = p.webhooks.GetByID(ctx, call.WebhookID)
	if err != nil {
		err = fmt.Errorf("reload webhook: %w", err)
		p.abandon(ctx, call, err, log)
		return err
	}
	if webhook == nil || !webhook.IsActive() {
		return p.discard(ctx, call, log)
	}

	result, deliverErr := p.executor.Deliver(ctx, call, webhook)
	if deliverErr != nil {
		return p.recordFailure(ctx, call, webhook, deliverErr, log)
	}
	if err := p.recordSuccess(ctx, call, webhook, result, log); err != nil {
		p.abandon(ctx, call, err, log)
		return err
	}
	return nil
}

// abandon settles a call whose attempt hit an infrastructure error after it
// went IN_PROGRESS: back to PENDING while the queue still retries it, FAILED
// once this was the last attempt the queue will run.
func (p *CallProcessor) abandon(ctx context.Context, call *domain.WebhookCall, cause error, log zerolog.Logger) {
	ctx = context.WithoutCancel(ctx)

	if call.Attempt < p.opts.MaxAttempts {
		next := p.now().Add(AdvisoryBackoff(call.Attempt, p.opts.BackoffBase))
		if err := p.calls.MarkPending(ctx, call.ID, next); err != nil {
			log.Error().Err(err).AnErr("cause", cause).Msg("webhook: failed to return call to pending")
		}
		return
	}

	dbTx, err := p.txManager.Begin(ctx)
	if err != nil {
		log.Error().Err(err).AnErr("cause", cause).Msg("webhook: failed to mark exhausted call failed")
		return
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	update := domain.CallFailure{
		CallID:    call.ID,
		Attempt:   call.Attempt,
		Status:    domain.CallStatusFailed,
		LastError: cause.Error(),
	}
	if err := p.calls.MarkFailed(ctx, dbTx, update); err != nil {
		log.Error().Err(err).AnErr("cause", cause).Msg("webhook: failed to mark exhausted call failed")
		return
	}
	if err := dbTx.Commit(ctx); err != nil {
		log.Error().Err(err).AnErr("cause", cause).Msg("webhook: failed to mark exhausted call failed")
	}
}

func (p *CallProcessor) discard(ctx context.Context, call *domain.WebhookCall, log zerolog.Logger) error {
	if err := p.calls.MarkDiscarded(ctx, call.ID, call.Attempt); err != nil {
		return fmt.Errorf("discard call: %w", err)
	}
	log.Info().Err(apperror.ErrSubscriptionInactive).Msg("webhook: call discarded")
	return nil
}

func (p *CallProcessor) yieldLock(ctx context.Context, call *domain.WebhookCall, cause error, log zerolog.Logger) error {
	if err := p.calls.MarkPending(ctx, call.ID, p.now().Add(p.opts.LockRetryDelay)); err != nil {
		return fmt.Errorf("return call to pending: %w", err)
	}
	if cause != nil {
		log.Warn().Err(cause).Msg("webhook: lock store unavailable, requeueing")
		return fmt.Errorf("%w: %w", apperror.ErrLockNotAcquired, cause)
	}
	log.Debug().Msg("webhook: subscription busy, requeueing")
	return apperror.ErrLockNotAcquired
}

func (p *CallProcessor) recordSuccess(
	ctx context.Context,
	call *domain.WebhookCall,
	webhook *domain.Webhook,
	result *domain.DeliveryResult,
	log zerolog.Logger,
) error {
	dbTx, err := p.txManager.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := p.calls.MarkDelivered(ctx, dbTx, call.ID, *result); err != nil {
		return fmt.Errorf("mark call delivered: %w", err)
	}
	if err := p.webhooks.RecordSuccess(ctx, dbTx, webhook.ID, p.now()); err != nil {
		return fmt.Errorf("record webhook success: %w", err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	log.Info().
		Int("status", result.StatusCode).
		Int("response_time_ms", result.ResponseTimeMs).
		Msg("webhook: delivered")
	return nil
}

func (p *CallProcessor) recordFailure(
	ctx context.Context,
	call *domain.WebhookCall,
	webhook *domain.Webhook,
	deliverErr error,
	log zerolog.Logger,
) error {
	now := p.now()

	dbTx, err := p.txManager.Begin(ctx)
	if err != nil {
		p.abandon(ctx, call, deliverErr, log)
		return errors.Join(deliverErr, fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	outcome, err := p.webhooks.RecordFailure(ctx, dbTx, webhook.ID, now, p.opts.AutoDisableThreshold)
	if err != nil {
		p.abandon(ctx, call, deliverErr, log)
		return errors.Join(deliverErr, fmt.Errorf("record webhook failure: %w", err))
	}

	update := domain.CallFailure{
		CallID:    call.ID,
		Attempt:   call.Attempt,
		LastError: deliverErr.Error(),
	}
	if de, ok := apperror.AsDeliveryError(deliverErr); ok {
		if de.HasResponse() {
			status := de.StatusCode
			update.ResponseStatus = &status
		}
		elapsed := de.ResponseTimeMs
		update.ResponseTimeMs = &elapsed
		if de.ResponseText != "" {
			text := de.ResponseText
			update.ResponseText = &text
		}
	}

	if call.Attempt >= p.opts.MaxAttempts || outcome.JustDisabled() {
		update.Status = domain.CallStatusFailed
	} else {
		update.Status = domain.CallStatusPending
		next := now.Add(AdvisoryBackoff(call.Attempt, p.opts.BackoffBase))
		update.NextAttemptAt = &next
	}

	if err := p.calls.MarkFailed(ctx, dbTx, update); err != nil {
		p.abandon(ctx, call, deliverErr, log)
		return errors.Join(deliverErr, fmt.Errorf("mark call failed: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		p.abandon(ctx, call, deliverErr, log)
		return errors.Join(deliverErr, fmt.Errorf("commit tx: %w", err))
	}

	event := log.Warn().
		Err(deliverErr).
		Str("status", string(update.Status)).
		Int("consecutive_failures", outcome.ConsecutiveFailures)
	if update.NextAttemptAt != nil {
		event = event.Time("next_attempt_at", *update.NextAttemptAt)
	}
	event.Msg("webhook: delivery failed")

	if outcome.JustDisabled() {
		log.Warn().
			Int("consecutive_failures", outcome.ConsecutiveFailures).
			Msg("webhook: auto-disabled after repeated failures")
		return nil
	}

	return fmt.Errorf("deliver call attempt %d: %w", call.Attempt, deliverErr)
}
