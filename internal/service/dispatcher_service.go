package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"webhook-dispatcher/internal/core/domain"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// callNamespace seeds deterministic call ids for idempotent fan-out.
var callNamespace = uuid.MustParse("6f1c3e0a-8d52-4b7e-9a61-2c4f5d8e7b90")

const (
	defaultCallListLimit = 50
	maxCallListLimit     = 100
)

// DispatcherServiceImpl implements ports.DispatcherService.
type DispatcherServiceImpl struct {
	webhooks ports.WebhookRepository
	calls    ports.CallRepository
	queue    ports.JobQueue
	now      func() time.Time
	log      zerolog.Logger
}

// NewDispatcherService creates a new dispatcher.
func NewDispatcherService(
	webhooks ports.WebhookRepository,
	calls ports.CallRepository,
	queue ports.JobQueue,
	log zerolog.Logger,
) *DispatcherServiceImpl {
	return &DispatcherServiceImpl{
		webhooks: webhooks,
		calls:    calls,
		queue:    queue,
		now:      time.Now,
		log:      log,
	}
}

// CallIDFor derives the call id of eventID delivered to webhookID.
func CallIDFor(eventID string, webhookID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(callNamespace, []byte(eventID+"/"+webhookID.String()))
}

// Emit fans an event out to every ACTIVE webhook of the team subscribed to
// eventType. Failures are logged and never surface to the producer.
func (s *DispatcherServiceImpl) Emit(ctx context.Context, teamID uuid.UUID, eventType string, payload any, opts ...ports.EmitOption) {
	var o ports.EmitOptions
	for _, opt := range opts {
		opt(&o)
	}

	log := s.log.With().Str("team_id", teamID.String()).Str("event_type", eventType).Logger()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("webhook: emit recovered from panic")
		}
	}()

	if err := domain.ValidatePayload(eventType, payload); err != nil {
		log.Warn().Err(err).Msg("webhook: rejected event payload")
		return
	}

	webhooks, err := s.webhooks.ListActiveForEvent(ctx, teamID, eventType)
	if err != nil {
		log.Error().Err(err).Msg("webhook: failed to list subscribed webhooks")
		return
	}
	if len(webhooks) == 0 {
		return
	}

	body := s.serializePayload(payload, log)
	eventID := o.EventID
	if eventID == "" {
		eventID = uuid.NewString()
	}
	now := s.now()

	for i := range webhooks {
		wh := &webhooks[i]
		call := domain.NewWebhookCall(CallIDFor(eventID, wh.ID), wh, eventType, body, now)
		if err := s.createAndEnqueue(ctx, call); err != nil {
			log.Error().Err(err).
				Str("webhook_id", wh.ID.String()).
				Str("call_id", call.ID.String()).
				Msg("webhook: failed to dispatch call")
		}
	}

	log.Debug().Int("webhooks", len(webhooks)).Str("event_id", eventID).Msg("webhook: event dispatched")
}

// TestWebhook queues a synthetic webhook.test call through the normal delivery path.
func (s *DispatcherServiceImpl) TestWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (uuid.UUID, error) {
	wh, err := s.ownedWebhook(ctx, webhookID, teamID)
	if err != nil {
		return uuid.Nil, err
	}
	if !wh.IsActive() {
		return uuid.Nil, apperror.ErrWebhookNotActive()
	}

	now := s.now()
	payload, err := json.Marshal(domain.TestEventData{
		Test:      true,
		WebhookID: wh.ID.String(),
		Message:   "This is a test webhook from useSend",
		SentAt:    now.UTC(),
	})
	if err != nil {
		return uuid.Nil, apperror.InternalError(err)
	}

	call := domain.NewWebhookCall(uuid.New(), wh, domain.EventWebhookTest, string(payload), now)
	if err := s.createAndEnqueue(ctx, call); err != nil {
		return uuid.Nil, err
	}

	s.log.Info().
		Str("webhook_id", wh.ID.String()).
		Str("call_id", call.ID.String()).
		Msg("webhook: test event queued")
	return call.ID, nil
}

// RetryCall moves a FAILED call back to PENDING at attempt 0 and re-queues it.
func (s *DispatcherServiceImpl) RetryCall(ctx context.Context, callID uuid.UUID, teamID uuid.UUID) error {
	call, err := s.GetCall(ctx, callID, teamID)
	if err != nil {
		return err
	}
	if call.Status != domain.CallStatusFailed {
		return apperror.ErrCallNotRetryable()
	}

	wh, err := s.ownedWebhook(ctx, call.WebhookID, teamID)
	if err != nil {
		return err
	}
	if !wh.IsActive() {
		return apperror.ErrWebhookNotActive()
	}

	reset, err := s.calls.ResetForRetry(ctx, call.ID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !reset {
		return apperror.ErrCallNotRetryable()
	}

	if _, err := s.queue.Enqueue(ctx, call.ID.String()); err != nil {
		return apperror.ErrQueueError(err)
	}

	s.log.Info().Str("call_id", call.ID.String()).Msg("webhook: call re-queued")
	return nil
}

// ActivateWebhook re-enables a disabled webhook and resets its failure counter.
func (s *DispatcherServiceImpl) ActivateWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) error {
	ok, err := s.webhooks.Activate(ctx, webhookID, teamID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		return apperror.ErrNotFound("Webhook")
	}

	s.log.Info().Str("webhook_id", webhookID.String()).Msg("webhook: re-activated")
	return nil
}

// GetCall returns a call owned by teamID.
func (s *DispatcherServiceImpl) GetCall(ctx context.Context, callID uuid.UUID, teamID uuid.UUID) (*domain.WebhookCall, error) {
	call, err := s.calls.GetByID(ctx, callID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if call == nil || call.TeamID != teamID {
		return nil, apperror.ErrNotFound("Call")
	}
	return call, nil
}

// ListCalls returns the most recent calls of a webhook owned by teamID.
func (s *DispatcherServiceImpl) ListCalls(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID, limit int) ([]domain.WebhookCall, error) {
	if _, err := s.ownedWebhook(ctx, webhookID, teamID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultCallListLimit
	}
	if limit > maxCallListLimit {
		limit = maxCallListLimit
	}

	calls, err := s.calls.ListByWebhook(ctx, webhookID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return calls, nil
}

func (s *DispatcherServiceImpl) ownedWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (*domain.Webhook, error) {
	wh, err := s.webhooks.GetByID(ctx, webhookID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wh == nil || wh.TeamID != teamID {
		return nil, apperror.ErrNotFound("Webhook")
	}
	return wh, nil
}

// createAndEnqueue persists the call then queues a job with the same id.
// A call that already exists is still enqueued; the queue drops live duplicates.
func (s *DispatcherServiceImpl) createAndEnqueue(ctx context.Context, call *domain.WebhookCall) error {
	created, err := s.calls.Create(ctx, call)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("create call: %w", err))
	}
	if !created {
		s.log.Debug().Str("call_id", call.ID.String()).Msg("webhook: call already exists")
	}

	if _, err := s.queue.Enqueue(ctx, call.ID.String()); err != nil {
		return apperror.ErrQueueError(fmt.Errorf("enqueue call: %w", err))
	}
	return nil
}

func (s *DispatcherServiceImpl) serializePayload(payload any, log zerolog.Logger) (body string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("webhook: payload marshalling panicked, sending empty object")
			body = "{}"
		}
	}()

	switch p := payload.(type) {
	case nil:
		return "{}"
	case []byte:
		if json.Valid(p) {
			return string(p)
		}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Msg("webhook: payload not serializable, sending empty object")
		return "{}"
	}
	if string(b) == "null" {
		return "{}"
	}
	return string(b)
}
